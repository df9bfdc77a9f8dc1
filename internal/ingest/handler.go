package ingest

import (
	"strconv"
	"strings"

	"hris-backend/internal/auth"
	"hris-backend/internal/models"
	"hris-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// POST /api/subir-asistencia
// Parses the uploaded .xlsx (first sheet, first row as header), stamps every
// row with the caller's tenant id and appends them to asistencias_diarias.
// The batch is best-effort: rows are appended one by one with no wrapping
// transaction, so a mid-batch storage fault returns 500 and leaves the
// already-flushed prefix in place. Known consistency gap, kept on purpose.
func UploadAttendanceHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenantID, err := auth.RequireTenant(c)
		if err != nil {
			return err
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "No se pudo leer el archivo: "+err.Error())
		}
		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
			return fiber.NewError(fiber.StatusBadRequest, "Sube un archivo .xlsx válido.")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo abrir el archivo: "+err.Error())
		}
		defer file.Close()

		excelFile, err := excelize.OpenReader(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "No se pudo leer el Excel: "+err.Error())
		}
		defer excelFile.Close()

		sheetList := excelFile.GetSheetList()
		if len(sheetList) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "El Excel no contiene hojas")
		}

		rows, err := excelFile.GetRows(sheetList[0])
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "No se pudo leer la hoja: "+err.Error())
		}
		if len(rows) < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "El Excel está vacío")
		}

		columns := headerIndex(rows[0])

		registered := 0
		for _, row := range rows[1:] {
			if isEmptyRow(row) {
				continue
			}

			entry := models.DailyAttendance{
				EmployeeID: atoiCell(cell(row, columns["id_empleado"])),
				Date:       cell(row, columns["fecha"]),
				EntryTime:  cell(row, columns["hora_entrada"]),
				ExitTime:   cell(row, columns["hora_salida"]),
				TenantID:   tenantID,
			}
			if err := st.Append(&entry); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Error al guardar asistencias: "+err.Error())
			}
			registered++
		}

		return c.JSON(fiber.Map{
			"filas_registradas": registered,
			"estado":            "Éxito",
		})
	}
}

// headerIndex maps recognized column names (case-insensitive) to their
// position in the sheet. Missing columns map to -1.
func headerIndex(header []string) map[string]int {
	columns := map[string]int{
		"id_empleado":  -1,
		"fecha":        -1,
		"hora_entrada": -1,
		"hora_salida":  -1,
	}
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := columns[key]; ok {
			columns[key] = i
		}
	}
	return columns
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func atoiCell(v string) int {
	n, _ := strconv.Atoi(v)
	return n
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
