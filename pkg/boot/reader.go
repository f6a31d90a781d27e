package boot

import (
	"fmt"
	"io"

	"github.com/bgrewell/eltorito-kit/pkg/consts"
)

// ReadSectors seeks to the given physical (2048-byte) sector and reads
// exactly count virtual (512-byte) blocks. A short read means the image is
// truncated or corrupt; this is the single length check the rest of the
// decoding relies on.
func ReadSectors(r io.ReadSeeker, sector int64, count int64) ([]byte, error) {
	offset := sector * consts.ISO9660_SECTOR_SIZE
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: seek to sector %d: %v", ErrTruncatedImage, sector, err)
	}
	buf := make([]byte, count*consts.VIRTUAL_SECTOR_SIZE)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: %d blocks at sector %d: %v", ErrTruncatedImage, count, sector, err)
	}
	return buf, nil
}
