package catalog

import (
	"io"

	"github.com/tealeg/xlsx"
)

var exportHeaders = []string{"ID", "Name", "Category", "Price", "Signature", "Available", "Description"}

// WriteXLSX writes every item, available or not, as one sheet.
func (m *Menu) WriteXLSX(w io.Writer) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Menu")
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	for _, h := range exportHeaders {
		headerRow.AddCell().SetValue(h)
	}

	for _, it := range m.items {
		row := sheet.AddRow()
		row.AddCell().SetValue(it.ID)
		row.AddCell().SetValue(it.Name)
		row.AddCell().SetValue(string(it.Category))
		row.AddCell().SetFloat(it.Price.InexactFloat64())
		row.AddCell().SetBool(it.IsSignature)
		row.AddCell().SetBool(it.Available)
		row.AddCell().SetValue(it.Description)
	}

	return file.Write(w)
}
