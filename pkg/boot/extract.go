package boot

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bgrewell/eltorito-kit/pkg/consts"
	"github.com/bgrewell/eltorito-kit/pkg/logging"
	"github.com/bgrewell/eltorito-kit/pkg/report"
)

// PartitionEntry is the first slot of the partition table embedded in a
// hard-disk boot image's MBR sector. Only the two LBA fields matter: the
// catalog's sector count is not reliable for hard-disk media, so the image
// extent is recomputed as FirstSectorLBA + SectorCountLBA (512-byte units).
type PartitionEntry struct {
	FirstSectorLBA uint32
	SectorCountLBA uint32
}

func parsePartitionEntry(data []byte) PartitionEntry {
	// 16-byte slot: bootable flag and CHS fields (8 bytes, ignored),
	// then the two little-endian LBA fields.
	return PartitionEntry{
		FirstSectorLBA: binary.LittleEndian.Uint32(data[8:12]),
		SectorCountLBA: binary.LittleEndian.Uint32(data[12:16]),
	}
}

// Extractor locates and reads the initial El Torito boot image from an
// ISO9660 image source. Extractors hold no per-call state; one may be used
// for any number of independent sources.
type Extractor struct {
	log  *logging.Logger
	sink report.Sink
}

// NewExtractor creates an Extractor reporting decoded fields to sink and
// logging through log. Either may be nil.
func NewExtractor(log *logging.Logger, sink report.Sink) *Extractor {
	if log == nil {
		log = logging.DefaultLogger()
	}
	if sink == nil {
		sink = report.Discard()
	}
	return &Extractor{log: log, sink: sink}
}

// Extract decodes the boot record and boot catalog, resolves the image's
// sector count for its media type, and returns the image bytes. The buffer
// length is always an exact multiple of 512; on any decode or read failure
// nothing is returned.
func (e *Extractor) Extract(r io.ReadSeeker) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidArgument)
	}

	record, err := DecodeBootRecord(r, e.sink, e.log)
	if err != nil {
		return nil, err
	}

	_, initial, err := DecodeCatalog(r, record.CatalogSector, e.sink, e.log)
	if err != nil {
		return nil, err
	}

	count := initial.Media.BlockCount()
	if initial.Media == MediaHardDisk {
		count, err = e.resolveHardDiskCount(r, initial.LoadRBA)
		if err != nil {
			return nil, err
		}
	}
	// Covers no-emulation media and any unrecognized media byte: the
	// catalog's own count field is all there is.
	if count == 0 {
		count = uint32(initial.SectorCount)
	}

	e.sink.Record("sector_size", uint32(consts.VIRTUAL_SECTOR_SIZE))
	e.sink.Record("sector_count", count)
	e.sink.Record("sector_start", initial.LoadRBA)
	e.log.Info("extracting boot image",
		"media", initial.Media.String(),
		"sectorStart", initial.LoadRBA,
		"sectorCount", count)

	return ReadSectors(r, int64(initial.LoadRBA), int64(count))
}

// resolveHardDiskCount reads the embedded image's own MBR and sizes the
// image from the first partition slot.
func (e *Extractor) resolveHardDiskCount(r io.ReadSeeker, loadRBA uint32) (uint32, error) {
	mbr, err := ReadSectors(r, int64(loadRBA), 1)
	if err != nil {
		return 0, err
	}
	part := parsePartitionEntry(mbr[consts.MBR_PARTITION_OFFSET : consts.MBR_PARTITION_OFFSET+16])
	e.log.Trace("partition table read",
		"firstSectorLBA", part.FirstSectorLBA,
		"sectorCountLBA", part.SectorCountLBA)
	return part.FirstSectorLBA + part.SectorCountLBA, nil
}
