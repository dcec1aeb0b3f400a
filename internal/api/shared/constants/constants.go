package constants

import "time"

const (
	MAX_PAGE_SIZE       = 100
	DEFAULT_CARDS_LIMIT = 20
	DEFAULT_OFFSET      = uint64(0)

	// Live search socket
	LIVE_WRITE_WAIT       = 10 * time.Second
	LIVE_PONG_WAIT        = 60 * time.Second
	LIVE_PING_PERIOD      = LIVE_PONG_WAIT * 9 / 10
	LIVE_MAX_MESSAGE_SIZE = 4096
	LIVE_SEND_BUFFER      = 8
)
