package boot

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/bgrewell/eltorito-kit/pkg/consts"
	"github.com/bgrewell/eltorito-kit/pkg/logging"
	"github.com/bgrewell/eltorito-kit/pkg/report"
)

// Platform represents the target booting system named by the validation entry.
type Platform byte

const (
	PlatformX86     Platform = 0x00
	PlatformPowerPC Platform = 0x01
	PlatformMac     Platform = 0x02
)

func (p Platform) String() string {
	switch p {
	case PlatformX86:
		return "x86"
	case PlatformPowerPC:
		return "PowerPC"
	case PlatformMac:
		return "Mac"
	default:
		// Unknown platforms are reported, never rejected.
		return "unknown"
	}
}

// Media represents the emulated media type of a boot entry.
type Media byte

const (
	MediaNoEmulation Media = 0x00
	MediaFloppy12    Media = 0x01
	MediaFloppy144   Media = 0x02
	MediaFloppy288   Media = 0x03
	MediaHardDisk    Media = 0x04
)

func (m Media) String() string {
	switch m {
	case MediaNoEmulation:
		return "no emulation"
	case MediaFloppy12:
		return "1.2meg floppy"
	case MediaFloppy144:
		return "1.44meg floppy"
	case MediaFloppy288:
		return "2.88meg floppy"
	case MediaHardDisk:
		return "harddisk"
	default:
		return "unknown"
	}
}

// BlockCount returns the virtual sector count implied by the emulated
// device's fixed capacity. Zero means the capacity is not fixed by the
// media type: for no-emulation (and unknown) media the catalog's own count
// field is authoritative, and for hard disks the embedded partition table
// is consulted instead.
func (m Media) BlockCount() uint32 {
	switch m {
	case MediaFloppy12:
		return 1200 * 1024 / consts.VIRTUAL_SECTOR_SIZE
	case MediaFloppy144:
		return 1440 * 1024 / consts.VIRTUAL_SECTOR_SIZE
	case MediaFloppy288:
		return 2880 * 1024 / consts.VIRTUAL_SECTOR_SIZE
	default:
		return 0
	}
}

// ValidationEntry is the 32-byte record at the start of the boot catalog.
type ValidationEntry struct {
	HeaderID     byte     // Must be 0x01
	Platform     Platform // Target platform
	Manufacturer string   // 24-byte developer/manufacturer string
	Checksum     uint16   // Checksum word, present but not verified
	Key1         byte     // Must be 0x55
	Key2         byte     // Must be 0xAA
}

// InitialEntry is the default boot entry at catalog offset 32.
type InitialEntry struct {
	BootIndicator byte   // 0x88 marks a bootable entry
	Media         Media  // Emulated media type
	LoadSegment   uint16 // Informational only
	SystemType    byte   // Informational only
	SectorCount   uint16 // Virtual sector count claimed by the catalog
	LoadRBA       uint32 // Start of the image, in physical sectors
}

// DecodeCatalog reads the boot catalog sector and parses its validation
// entry and initial/default entry. Entries beyond the initial one (section
// headers, extension records) are not consulted.
func DecodeCatalog(r io.ReadSeeker, catalogSector uint32, sink report.Sink, log *logging.Logger) (*ValidationEntry, *InitialEntry, error) {
	if sink == nil {
		sink = report.Discard()
	}
	if log == nil {
		log = logging.DefaultLogger()
	}

	sector, err := ReadSectors(r, int64(catalogSector), 1)
	if err != nil {
		return nil, nil, err
	}

	validation := parseValidationEntry(sector[0:32])
	if validation.HeaderID != consts.VALIDATION_HEADER_ID {
		err := fmt.Errorf("%w: header ID 0x%02x", ErrInvalidValidationEntry, validation.HeaderID)
		log.Error(err, "catalog rejected")
		return nil, nil, err
	}
	if validation.Key1 != consts.VALIDATION_KEY_1 || validation.Key2 != consts.VALIDATION_KEY_2 {
		err := fmt.Errorf("%w: key bytes 0x%02x 0x%02x", ErrInvalidValidationEntry, validation.Key1, validation.Key2)
		log.Error(err, "catalog rejected")
		return nil, nil, err
	}

	sink.Record("platform", byte(validation.Platform))
	sink.Record("manufacturer", validation.Manufacturer)
	sink.Record("platform_string", validation.Platform.String())

	initial := parseInitialEntry(sector[32:45])
	if initial.BootIndicator != consts.BOOT_INDICATOR_BOOTABLE {
		err := fmt.Errorf("%w: boot indicator 0x%02x", ErrNotBootableEntry, initial.BootIndicator)
		log.Error(err, "catalog rejected")
		return nil, nil, err
	}

	sink.Record("media", byte(initial.Media))
	sink.Record("media_type", initial.Media.String())

	log.Debug("boot catalog decoded",
		"platform", validation.Platform.String(),
		"media", initial.Media.String(),
		"loadRBA", initial.LoadRBA)
	return validation, initial, nil
}

func parseValidationEntry(data []byte) *ValidationEntry {
	return &ValidationEntry{
		HeaderID:     data[0],
		Platform:     Platform(data[1]),
		Manufacturer: strings.TrimRight(string(data[4:28]), "\x00 "),
		Checksum:     binary.LittleEndian.Uint16(data[28:30]),
		Key1:         data[30],
		Key2:         data[31],
	}
}

func parseInitialEntry(data []byte) *InitialEntry {
	return &InitialEntry{
		BootIndicator: data[0],
		Media:         Media(data[1]),
		LoadSegment:   binary.LittleEndian.Uint16(data[2:4]),
		SystemType:    data[4],
		SectorCount:   binary.LittleEndian.Uint16(data[6:8]),
		LoadRBA:       binary.LittleEndian.Uint32(data[8:12]),
	}
}
