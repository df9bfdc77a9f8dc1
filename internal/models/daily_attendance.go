package models

// DailyAttendance is one row of an uploaded attendance spreadsheet. The
// source file only carries the first four columns; usuario_id is stamped at
// ingestion time.
type DailyAttendance struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	EmployeeID int    `gorm:"column:id_empleado;index" json:"id_empleado"`
	Date       string `gorm:"column:fecha;size:20" json:"fecha"`
	EntryTime  string `gorm:"column:hora_entrada;size:10" json:"hora_entrada"`
	ExitTime   string `gorm:"column:hora_salida;size:10" json:"hora_salida"`
	TenantID   uint   `gorm:"column:usuario_id;index;not null" json:"usuario_id"`
}

func (DailyAttendance) TableName() string { return "asistencias_diarias" }
