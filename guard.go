package chunkq

// Panic messages for the chunkqguard build. Push and Unpush share the
// producer-side guard; Pop owns the consumer-side guard.
const (
	guardMsgPush   = "chunkq: concurrent Push on SPSC queue - only one producer allowed"
	guardMsgUnpush = "chunkq: concurrent Unpush on SPSC queue - only one producer allowed"
	guardMsgPop    = "chunkq: concurrent Pop on SPSC queue - only one consumer allowed"
)
