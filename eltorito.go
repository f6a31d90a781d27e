package eltorito

import (
	"fmt"
	"io"
	"os"

	"github.com/bgrewell/eltorito-kit/pkg/boot"
	"github.com/bgrewell/eltorito-kit/pkg/logging"
	"github.com/bgrewell/eltorito-kit/pkg/option"
	"github.com/bgrewell/eltorito-kit/pkg/report"
)

// Extract reads the initial El Torito boot image from an open cd image
// source. The returned buffer's length is an exact multiple of 512 bytes.
func Extract(r io.ReadSeeker, opts ...option.Option) ([]byte, error) {
	// Set default options
	options := option.Options{
		Logger: logging.DefaultLogger(),
		Report: report.Discard(),
	}

	// Apply options
	for _, opt := range opts {
		opt(&options)
	}

	return boot.NewExtractor(options.Logger, options.Report).Extract(r)
}

// ExtractFile extracts the boot image embedded in the cd image at
// inputPath and writes it to outputPath. The input must exist and the
// output must not; the output file is only created after extraction has
// fully succeeded, so a failed run never leaves a partial image behind.
func ExtractFile(inputPath string, outputPath string, opts ...option.Option) error {
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("unable to find %s: %w", inputPath, err)
	}
	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("output file already exists: %s", outputPath)
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", inputPath, err)
	}
	defer f.Close()

	image, err := Extract(f, opts...)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, image, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return nil
}
