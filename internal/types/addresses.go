package types

// HardwareAddress is the address of a hardware register of the Game
// Boy. The hardware registers are mapped to memory addresses
// 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 is the address of the joypad register. It is used to select
	// the input keys to be read by the CPU, and to read the state of
	// the joypad.
	P1 HardwareAddress = 0xFF00
	// SB is the address of the serial transfer data register. It holds
	// the byte being shifted in/out over the link cable.
	SB HardwareAddress = 0xFF01
	// SC is the address of the serial transfer control register.
	SC HardwareAddress = 0xFF02
	// DIV is the address of the divider register. Internally it is the
	// high byte of the 16-bit system counter; only those 8 bits may be
	// read, and writing any value resets the whole counter to zero.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the timer counter register. It is
	// incremented at the rate selected by TAC. When TIMA overflows it
	// is reloaded from TMA and a timer interrupt is requested. The
	// reload is delayed by one machine cycle, during which TIMA
	// reads as zero.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the timer modulo register. It is loaded
	// into TIMA when TIMA overflows.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the timer control register.
	//
	//  Bit 2:   Timer enable
	//  Bit 1-0: Clock select (4096Hz, 262144Hz, 65536Hz, 16384Hz)
	TAC HardwareAddress = 0xFF07
	// IF is the address of the interrupt flag register.
	//
	//  Bit 0: VBlank interrupt requested  (INT 40h)
	//  Bit 1: LCD STAT interrupt requested (INT 48h)
	//  Bit 2: Timer interrupt requested   (INT 50h)
	//  Bit 3: Serial interrupt requested  (INT 58h)
	//  Bit 4: Joypad interrupt requested  (INT 60h)
	IF HardwareAddress = 0xFF0F
	// LCDC is the address of the LCD control register.
	LCDC HardwareAddress = 0xFF40
	// STAT is the address of the LCD status register.
	STAT HardwareAddress = 0xFF41
	// SCY is the address of the background vertical scroll register.
	SCY HardwareAddress = 0xFF42
	// SCX is the address of the background horizontal scroll register.
	SCX HardwareAddress = 0xFF43
	// LY is the address of the current scanline register. Values range
	// from 0-153, with 144-153 indicating VBlank.
	LY HardwareAddress = 0xFF44
	// LYC is the address of the scanline compare register.
	LYC HardwareAddress = 0xFF45
	// DMA is the address of the OAM DMA transfer register.
	DMA HardwareAddress = 0xFF46
	// BGP is the address of the background palette register.
	BGP HardwareAddress = 0xFF47
	// OBP0 is the address of the first object palette register.
	OBP0 HardwareAddress = 0xFF48
	// OBP1 is the address of the second object palette register.
	OBP1 HardwareAddress = 0xFF49
	// WY is the address of the window Y position register.
	WY HardwareAddress = 0xFF4A
	// WX is the address of the window X position register.
	WX HardwareAddress = 0xFF4B
	// BDIS is the address of the boot ROM disable register. Writing a
	// non-zero value unmaps the boot ROM from 0x0000 - 0x00FF for the
	// remainder of the session.
	BDIS HardwareAddress = 0xFF50
	// IE is the address of the interrupt enable register. Each set bit
	// enables the interrupt source of the corresponding IF bit.
	IE HardwareAddress = 0xFFFF
)
