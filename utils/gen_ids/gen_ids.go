package gen_ids

import (
	"fmt"
	"sync"
	"time"
)

// tokenSource serves millisecond tokens from a single goroutine so that two
// requests in the same millisecond never collide.
type tokenSource struct {
	LatestId     int64
	GetIdChannel chan chan int64
}

var (
	source   *tokenSource
	initOnce sync.Once
)

func InitGenIDservice() {
	initOnce.Do(func() {
		source = &tokenSource{
			GetIdChannel: make(chan chan int64, 1000),
		}
		go func() {
			for reply := range source.GetIdChannel {
				id := time.Now().UnixNano() / int64(time.Millisecond)
				if id <= source.LatestId {
					id = source.LatestId + 1
				}
				source.LatestId = id
				reply <- id
			}
		}()
	})
}

func GetId() string {
	InitGenIDservice()
	id := make(chan int64, 1)
	source.GetIdChannel <- id
	return fmt.Sprint(<-id)
}

// GetTransId returns the time-based token identifying one transfer attempt.
func GetTransId() string {
	return GetId()
}

// GetBillNumber is the fallback bill number used when the gateway resolved
// no bill for the payee account.
func GetBillNumber() string {
	return GetId()
}
