package streammock_test

import (
	"github.com/ghettovoice/gohts/internal/testutil/streammock"
	"github.com/ghettovoice/gohts/sam"
)

var (
	_ sam.Stream = (*streammock.MockStream)(nil)
	_ sam.Opener = (*streammock.MockOpener)(nil)
)
