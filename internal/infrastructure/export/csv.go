package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"flyerplan/internal/domain"
	"flyerplan/internal/domain/entity"
	"flyerplan/pkg/errcodes"
	"flyerplan/pkg/lox"
)

//nolint:gochecknoglobals
var header = []string{"store", "flyer_id", "item", "price", "category", "valid_from", "valid_to"}

// CSVWriter serializes deal records to a flat UTF-8 CSV file. Every write is
// a single-shot full rewrite: the file is truncated, never appended to.
type CSVWriter struct {
	path string
}

func NewCSVWriter(path string) CSVWriter {
	return CSVWriter{path: path}
}

func (w CSVWriter) Write(records []entity.DealRecord) error {
	f, err := os.Create(w.path)
	if err != nil {
		return domain.WrapError(err, errcodes.ExportFailed, "create export file")
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if err := cw.Write(header); err != nil {
		return domain.WrapError(err, errcodes.ExportFailed, "write header")
	}

	for _, fields := range lox.Map(records, row) {
		if err := cw.Write(fields); err != nil {
			return domain.WrapError(err, errcodes.ExportFailed, "write record")
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return domain.WrapError(err, errcodes.ExportFailed, "flush export file")
	}

	if err := f.Close(); err != nil {
		return domain.WrapError(err, errcodes.ExportFailed, "close export file")
	}

	return nil
}

func row(r entity.DealRecord) []string {
	return []string{
		r.Store,
		r.FlyerID,
		r.Item,
		strconv.FormatFloat(r.Price, 'f', 2, 64),
		r.Category,
		r.ValidFrom,
		r.ValidTo,
	}
}
