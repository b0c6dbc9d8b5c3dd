package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Employee is the directory row the engine reads. Records are managed by an
// upstream HR system; this service only ever queries them.
type Employee struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID string    `gorm:"column:employee_id;type:varchar(20);not null;uniqueIndex"`
	Name       string    `gorm:"column:name;type:varchar(120);not null"`
	Department string    `gorm:"column:department;type:varchar(60);not null;index"`
	Position   string    `gorm:"column:position;type:varchar(60)"`
	HireDate   time.Time `gorm:"column:hire_date;type:date"`
	BaseSalary float64   `gorm:"column:base_salary;type:numeric(12,2);not null;default:0"`
	OTRate     float64   `gorm:"column:ot_rate;type:numeric(8,2);not null;default:0"`
	Status     string    `gorm:"column:status;type:varchar(20);not null;default:active"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}
