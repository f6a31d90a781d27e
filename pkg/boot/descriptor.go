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

// BootRecord is the El Torito boot record volume descriptor at sector 17.
// Only the first 75 bytes of the sector are interpreted; the remainder is
// boot-system specific.
type BootRecord struct {
	// Boot System Identifier, must be "CD001" for an ISO9660 volume.
	BootSystemIdentifier string `json:"boot_system_identifier"`
	// Boot System Version byte.
	Version byte `json:"boot_system_version"`
	// Boot System Specifier, reduced to uppercase letters and spaces,
	// must read "EL TORITO SPECIFICATION".
	BootSystemSpecifier string `json:"boot_system_specifier"`
	// Sector index of the boot catalog.
	CatalogSector uint32 `json:"boot_catalog_sector"`
}

// DecodeBootRecord reads physical sector 17 and validates that the volume
// carries an El Torito boot catalog, yielding the catalog's sector index.
func DecodeBootRecord(r io.ReadSeeker, sink report.Sink, log *logging.Logger) (*BootRecord, error) {
	if sink == nil {
		sink = report.Discard()
	}
	if log == nil {
		log = logging.DefaultLogger()
	}

	sector, err := ReadSectors(r, consts.BOOT_RECORD_SECTOR, 1)
	if err != nil {
		return nil, err
	}

	// Layout: type byte, 5-byte identifier, version byte, 32-byte
	// specifier, 32 unused bytes, 4-byte LE catalog sector.
	br := &BootRecord{
		BootSystemIdentifier: string(sector[1:6]),
		Version:              sector[6],
		BootSystemSpecifier:  filterSpecifier(string(sector[7:39])),
		CatalogSector:        binary.LittleEndian.Uint32(sector[71:75]),
	}

	sink.Record("iso", br.BootSystemIdentifier)
	sink.Record("vers", br.Version)
	sink.Record("spec", br.BootSystemSpecifier)

	if br.BootSystemIdentifier != consts.ISO9660_STD_IDENTIFIER {
		err := fmt.Errorf("%w: identifier %q", ErrNotBootable, br.BootSystemIdentifier)
		log.Error(err, "boot record rejected")
		return nil, err
	}
	if br.BootSystemSpecifier != consts.EL_TORITO_BOOT_SYSTEM_ID {
		err := fmt.Errorf("%w: boot system %q", ErrNotBootable, br.BootSystemSpecifier)
		log.Error(err, "boot record rejected")
		return nil, err
	}

	sink.Record("partition", br.CatalogSector)
	log.Debug("boot record decoded", "catalogSector", br.CatalogSector)
	return br, nil
}

// filterSpecifier reduces the raw 32-byte specifier field to its uppercase
// letters and interior spaces, dropping nulls and padding.
func filterSpecifier(raw string) string {
	var b strings.Builder
	for _, c := range raw {
		if (c >= 'A' && c <= 'Z') || c == ' ' {
			b.WriteRune(c)
		}
	}
	return strings.TrimSpace(b.String())
}
