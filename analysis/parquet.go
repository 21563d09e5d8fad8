package analysis

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// WriteParquet exports the metrics to a snappy-compressed parquet file
// at path, using the schema declared on GameMetrics.
func WriteParquet(path string, metrics []GameMetrics) error {
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer fileWriter.Close()

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(GameMetrics), 2)
	if err != nil {
		return fmt.Errorf("creating parquet writer: %w", err)
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, m := range metrics {
		if err := parquetWriter.Write(m); err != nil {
			return fmt.Errorf("writing metrics row: %w", err)
		}
	}
	if err := parquetWriter.WriteStop(); err != nil {
		return fmt.Errorf("finalizing parquet file: %w", err)
	}
	return fileWriter.Close()
}
