// Package archive writes the response log of a run to parquet so it can be
// inspected after the mock server is gone.
package archive

import (
	"os"

	"github.com/apache/arrow/go/v13/arrow"
	"github.com/apache/arrow/go/v13/arrow/array"
	"github.com/apache/arrow/go/v13/arrow/memory"
	"github.com/apache/arrow/go/v13/parquet"
	"github.com/apache/arrow/go/v13/parquet/compress"
	pwriter "github.com/apache/arrow/go/v13/parquet/pqarrow"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/responses"
)

const createdBy = "telegram-mock-server"

// Write saves entries to a snappy compressed parquet file at path, one row
// per entry.
func Write(path string, entries []responses.Entry, logger *zap.Logger) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create parquet file")
	}
	defer file.Close()

	props := parquet.NewWriterProperties(
		parquet.WithCompression(compress.Codecs.Snappy),
		parquet.WithCreatedBy(createdBy),
	)
	arrProps := pwriter.NewArrowWriterProperties(
		pwriter.WithStoreSchema(),
	)

	schema := entrySchema()
	w, err := pwriter.NewFileWriter(schema, file, props, arrProps)
	if err != nil {
		return errors.Wrap(err, "create parquet writer")
	}

	if len(entries) > 0 {
		record := buildRecord(schema, entries)
		defer record.Release()

		if err := w.Write(record); err != nil {
			_ = w.Close()
			return errors.Wrap(err, "write record")
		}
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "close parquet writer")
	}

	logger.Info("Saved response log", zap.String("path", path), zap.Int("rows", len(entries)))
	return nil
}

func buildRecord(schema *arrow.Schema, entries []responses.Entry) arrow.Record {
	bldr := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer bldr.Release()

	for _, e := range entries {
		bldr.Field(0).(*array.StringBuilder).Append(e.Action)
		bldr.Field(1).(*array.Int64Builder).Append(int64(e.MessageID))
		bldr.Field(2).(*array.Int64Builder).Append(e.ChatID)

		if e.Kind != "" {
			bldr.Field(3).(*array.StringBuilder).Append(string(e.Kind))
		} else {
			bldr.Field(3).(*array.StringBuilder).AppendNull()
		}

		bldr.Field(4).(*array.TimestampBuilder).Append(arrow.Timestamp(e.Date * 1_000_000))

		if e.Text != "" {
			bldr.Field(5).(*array.StringBuilder).Append(e.Text)
		} else {
			bldr.Field(5).(*array.StringBuilder).AppendNull()
		}
	}
	return bldr.NewRecord()
}

func entrySchema() *arrow.Schema {
	return arrow.NewSchema(
		[]arrow.Field{
			{Name: "Action", Type: arrow.BinaryTypes.String, Nullable: false},
			{Name: "MessageID", Type: arrow.PrimitiveTypes.Int64, Nullable: false},
			{Name: "ChatID", Type: arrow.PrimitiveTypes.Int64, Nullable: false},
			{Name: "Kind", Type: arrow.BinaryTypes.String, Nullable: true},
			{Name: "Date", Type: arrow.FixedWidthTypes.Timestamp_us, Nullable: false},
			{Name: "Text", Type: arrow.BinaryTypes.String, Nullable: true},
		},
		nil,
	)
}
