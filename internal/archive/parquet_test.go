package archive

import (
	"path/filepath"
	"testing"

	"github.com/apache/arrow/go/v13/parquet/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/fixture"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/responses"
)

func TestWriteRowCount(t *testing.T) {
	tests := []struct {
		name string
		log  func() *responses.Log
		rows int64
	}{
		{"empty", func() *responses.Log { return &responses.Log{} }, 0},
		{"sends and deletes", func() *responses.Log {
			var l responses.Log
			l.SentMessages.Append(fixture.NewText().Text("one").Build())
			l.SentMessages.Append(fixture.NewPhoto().ID(2).Caption("two").Build())
			l.SentMessages.Append(fixture.NewSticker().ID(3).Build())
			l.DeletedMessages.Append(responses.DeletedMessage{Message: fixture.NewText().Build()})
			return &l
		}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "log.parquet")
			entries := tt.log().Entries()
			require.NoError(t, Write(path, entries, zaptest.NewLogger(t)))

			r, err := file.OpenParquetFile(path, false)
			require.NoError(t, err)
			defer r.Close()

			assert.Equal(t, tt.rows, r.NumRows())
			assert.Equal(t, 6, r.MetaData().Schema.NumColumns())
		})
	}
}

func TestWriteBadPath(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", "log.parquet"), nil, zaptest.NewLogger(t))
	assert.Error(t, err)
}
