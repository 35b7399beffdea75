package source

import "context"

// StandardCheckupSchedule serves the routine prenatal visit schedule. The
// schedule is static domain data; week numbers are gestational weeks.
type StandardCheckupSchedule struct{}

func NewStandardCheckupSchedule() *StandardCheckupSchedule {
	return &StandardCheckupSchedule{}
}

func (s *StandardCheckupSchedule) ListSchedule(ctx context.Context) ([]CheckupRecord, error) {
	return []CheckupRecord{
		{
			ID:                "checkup-w08",
			Week:              8,
			Title:             "First prenatal visit",
			Items:             []string{"Confirm pregnancy", "Medical history", "Blood panel", "Urine test"},
			Preparation:       []string{"Bring previous medical records", "List current medications"},
			Importance:        "high",
			EstimatedDuration: 120,
		},
		{
			ID:                "checkup-w12",
			Week:              12,
			Title:             "NT scan and first-trimester screening",
			Items:             []string{"Nuchal translucency ultrasound", "Combined screening bloods"},
			Preparation:       []string{"Drink water before the scan"},
			Importance:        "high",
			EstimatedDuration: 90,
		},
		{
			ID:                "checkup-w16",
			Week:              16,
			Title:             "Second-trimester visit",
			Items:             []string{"Blood pressure", "Fundal height", "Fetal heart tones"},
			Importance:        "medium",
			EstimatedDuration: 45,
		},
		{
			ID:                "checkup-w20",
			Week:              20,
			Title:             "Anatomy scan",
			Items:             []string{"Detailed anomaly ultrasound", "Placenta position"},
			Preparation:       []string{"Allow extra time, the scan is thorough"},
			Importance:        "high",
			EstimatedDuration: 90,
		},
		{
			ID:                "checkup-w24",
			Week:              24,
			Title:             "Glucose screening",
			Items:             []string{"Oral glucose tolerance test", "Hemoglobin check"},
			Preparation:       []string{"Fast as instructed before the test"},
			Importance:        "high",
			EstimatedDuration: 150,
		},
		{
			ID:                "checkup-w28",
			Week:              28,
			Title:             "Third-trimester visit",
			Items:             []string{"Rh antibody screen", "Growth check"},
			Importance:        "medium",
			EstimatedDuration: 45,
		},
		{
			ID:                "checkup-w32",
			Week:              32,
			Title:             "Growth ultrasound",
			Items:             []string{"Fetal growth scan", "Position check"},
			Importance:        "medium",
			EstimatedDuration: 60,
		},
		{
			ID:                "checkup-w36",
			Week:              36,
			Title:             "GBS screening",
			Items:             []string{"Group B strep swab", "Birth plan discussion"},
			Importance:        "high",
			EstimatedDuration: 45,
		},
		{
			ID:                "checkup-w38",
			Week:              38,
			Title:             "Weekly visit",
			Items:             []string{"Cervical check", "Fetal monitoring"},
			Importance:        "medium",
			EstimatedDuration: 30,
		},
		{
			ID:                "checkup-w40",
			Week:              40,
			Title:             "Due-date visit",
			Items:             []string{"Non-stress test", "Induction discussion if overdue"},
			Importance:        "high",
			EstimatedDuration: 60,
		},
	}, nil
}
