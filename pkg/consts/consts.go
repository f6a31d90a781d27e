package consts

const (
	// ISO9660 physical sector size.
	ISO9660_SECTOR_SIZE = 2048

	// Virtual sector size used by the boot catalog to express emulated
	// device sizes (512-byte blocks).
	VIRTUAL_SECTOR_SIZE = 512

	// Physical sector holding the El Torito boot record volume descriptor.
	// The volume descriptor area begins at sector 16; the boot record,
	// when present, occupies sector 17.
	BOOT_RECORD_SECTOR = 17

	// Standard ISO9660 identifier.
	ISO9660_STD_IDENTIFIER = "CD001"

	// El Torito bootable cdrom system identifier.
	EL_TORITO_BOOT_SYSTEM_ID = "EL TORITO SPECIFICATION"

	// Validation entry header ID.
	VALIDATION_HEADER_ID = 0x01

	// Validation entry key bytes at offsets 0x1E and 0x1F.
	VALIDATION_KEY_1 = 0x55
	VALIDATION_KEY_2 = 0xAA

	// Initial entry boot indicator marking a bootable image.
	BOOT_INDICATOR_BOOTABLE = 0x88

	// Byte offset of the first partition table slot within an MBR sector.
	MBR_PARTITION_OFFSET = 446
)
