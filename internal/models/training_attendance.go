package models

// ScanTimeLayout is the wall-clock format stored in hora_escaneo,
// second resolution, server local time.
const ScanTimeLayout = "2006-01-02 15:04:05"

// TrainingAttendance is one QR scan event. One row per scan, no dedup:
// the same employee scanning twice is two rows (re-training / multiple
// sessions).
type TrainingAttendance struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	TenantID   uint   `gorm:"column:usuario_id;index;not null" json:"usuario_id"`
	TrainingID int    `gorm:"column:id_capacitacion" json:"id_capacitacion"`
	EmployeeID int    `gorm:"column:id_empleado;index" json:"id_empleado"`
	ScannedAt  string `gorm:"column:hora_escaneo;size:20" json:"hora_escaneo"`
}

func (TrainingAttendance) TableName() string { return "asistencias_capacitacion" }
