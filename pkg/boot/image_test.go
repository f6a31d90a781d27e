package boot

import (
	"encoding/binary"

	"github.com/bgrewell/eltorito-kit/pkg/consts"
)

// Test images are assembled in memory: a boot record at sector 17 pointing
// at a catalog, and a catalog holding one validation entry plus the
// initial/default boot entry.

const testCatalogSector = 19

func writeBootRecord(img []byte, catalogSector uint32) {
	off := consts.BOOT_RECORD_SECTOR * consts.ISO9660_SECTOR_SIZE
	img[off] = 0x00 // descriptor type: boot record
	copy(img[off+1:], consts.ISO9660_STD_IDENTIFIER)
	img[off+6] = 0x01
	copy(img[off+7:], consts.EL_TORITO_BOOT_SYSTEM_ID)
	binary.LittleEndian.PutUint32(img[off+71:], catalogSector)
}

func writeCatalog(img []byte, catalogSector uint32, media Media, sectorCount uint16, loadRBA uint32) {
	off := int(catalogSector) * consts.ISO9660_SECTOR_SIZE

	// Validation entry
	img[off] = consts.VALIDATION_HEADER_ID
	img[off+1] = byte(PlatformX86)
	copy(img[off+4:], "ACME BOOT WORKS")
	img[off+30] = consts.VALIDATION_KEY_1
	img[off+31] = consts.VALIDATION_KEY_2

	// Initial entry
	e := off + 32
	img[e] = consts.BOOT_INDICATOR_BOOTABLE
	img[e+1] = byte(media)
	binary.LittleEndian.PutUint16(img[e+2:], 0x07C0) // load segment
	img[e+4] = 0x00                                  // system type
	binary.LittleEndian.PutUint16(img[e+6:], sectorCount)
	binary.LittleEndian.PutUint32(img[e+8:], loadRBA)
}

// buildImage returns a cd image of the given total length with a valid boot
// record and catalog describing a single initial entry.
func buildImage(size int, media Media, sectorCount uint16, loadRBA uint32) []byte {
	img := make([]byte, size)
	writeBootRecord(img, testCatalogSector)
	writeCatalog(img, testCatalogSector, media, sectorCount, loadRBA)
	return img
}

// fillPayload writes a repeating pattern over the image region so reads can
// be checked for both length and position.
func fillPayload(img []byte, loadRBA uint32, length int) {
	start := int(loadRBA) * consts.ISO9660_SECTOR_SIZE
	for i := 0; i < length; i++ {
		img[start+i] = byte(i % 251)
	}
}
