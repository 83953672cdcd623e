package models

// User - учетная запись. Создается при саморегистрации, мутируется
// админом (роль, увольнение) и HR (верификация), никогда не удаляется.
//
// JSON-теги isVarified/isFired сохраняют исторические имена полей,
// на которые завязан существующий фронтенд.
type User struct {
	BaseModel
	Email         string   `gorm:"uniqueIndex;not null" json:"email"`
	Name          string   `json:"name"`
	Role          UserRole `gorm:"type:varchar(20)" json:"role"`
	IsVerified    bool     `gorm:"default:false" json:"isVarified"`
	IsFired       bool     `gorm:"default:false" json:"isFired"`
	Designation   string   `json:"designation"`
	Salary        float64  `json:"salary"`
	BankAccountNo string   `json:"bank_account_no"`
	PhotoURL      string   `json:"photo"`
	PasswordHash  string   `json:"-"`
}
