package receipt

import _ "embed"

// DejaVu ships with the binary so receipts render the Arabic side without a
// font install on the host. Bitstream Vera license permits redistribution.

//go:embed fonts/DejaVuSans.ttf
var fontRegular []byte

//go:embed fonts/DejaVuSans-Bold.ttf
var fontBold []byte
