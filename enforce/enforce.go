package enforce

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

func init() {
	checkCompiler()
}

// ENFORCE halts on a false condition or a non-nil error, logging args as the reason.
// A nil query passes; any other type is a misuse and also halts.
func ENFORCE(query interface{}, args ...interface{}) {
	switch t := query.(type) {
	case bool:
		if !t {
			log.Error().Msg("ENFORCE: " + fmt.Sprint(args...))
			panic(fmt.Sprint(args...))
		}
	case error:
		if t != nil {
			log.Error().Err(t).Msg("ENFORCE: " + fmt.Sprint(args...))
			panic(t)
		}
	case nil:
		// enforce.ENFORCE(err) with a nil error passes.
	default:
		log.Error().Msg("ENFORCE: incorrect usage of enforce with type: " + fmt.Sprintf("%T", t))
		panic(t)
	}
}

// FAIL halts unconditionally.
func FAIL(args ...interface{}) {
	msg := fmt.Sprint(args...)
	log.Error().Msg("FAIL: " + msg)
	panic(msg)
}

// checkCompiler Enforces a 64bit machine: block masks and index arithmetic assume sizeof(int) is 8.
func checkCompiler() {
	myint := int(math.MaxInt64) // Shouldn't compile on a 32 bit system.
	myint64 := int64(math.MaxInt64)
	ENFORCE(uint64(myint) == uint64(myint64), "Must be on 64 bit system.")
}
