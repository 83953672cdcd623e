package models

// WorkInfo - запись о проделанной работе. Со стороны сотрудника
// append-only: без дедупликации и без схемной валидации
type WorkInfo struct {
	BaseModel
	Email        string  `gorm:"index;not null" json:"email"`
	Task         string  `json:"task"`
	HoursWorked  float64 `json:"hoursWorked"`
	Month        string  `json:"month"`
	EmployeeName string  `json:"employeeName"`
}
