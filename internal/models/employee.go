package models

// Employee is keyed by (id_empleado, usuario_id): the employee id is only
// meaningful inside a tenant and nothing enforces its uniqueness even there.
type Employee struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	EmployeeID int    `gorm:"column:id_empleado;index" json:"id_empleado"`
	Name       string `gorm:"column:nombre;size:100" json:"nombre"`
	Role       string `gorm:"column:puesto;size:100" json:"puesto"`
	Department string `gorm:"column:departamento;size:100" json:"departamento"`
	TenantID   uint   `gorm:"column:usuario_id;index;not null" json:"usuario_id"`
}

func (Employee) TableName() string { return "empleados" }
