package oled

// Control bytes leading every I²C transfer: Co=1 D/C=0 for a single command
// byte, Co=0 D/C=1 for a run of display RAM data.
const (
	commandMarker = 0x80
	dataMarker    = 0x40
)

// SSD1306 command opcodes.
const (
	setMemoryMode         = 0x20
	setColumnAddr         = 0x21
	setPageAddr           = 0x22
	setStartLine          = 0x40
	setContrast           = 0x81
	setChargePump         = 0x8D
	setSegmentRemap       = 0xA0
	setDisplayAllOnResume = 0xA4
	setDisplayAllOn       = 0xA5
	setNormalDisplay      = 0xA6
	setInvertDisplay      = 0xA7
	setMultiplexRatio     = 0xA8
	setDisplayOff         = 0xAE
	setDisplayOn          = 0xAF
	setComScanInc         = 0xC0
	setComScanDec         = 0xC8
	setDisplayOffset      = 0xD3
	setDisplayClockDiv    = 0xD5
	setPrecharge          = 0xD9
	setComPins            = 0xDA
	setVComDeselect       = 0xDB
)

// Command arguments.
const (
	memoryModeVertical = 0x01
	segmentRemapFlip   = 0x01
	comPinsAlternative = 0x12
	clockDivDefault    = 0x80
	prechargeInternal  = 0xF1
	vcomDeselect083    = 0x30
	contrastMax        = 0xFF
	chargePumpEnable   = 0x14
)
