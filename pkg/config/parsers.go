package config

import (
	"reflect"

	"github.com/caarlos0/env/v11"
	"golang.org/x/exp/constraints"

	"github.com/dmitrymomot/strto/pkg/radix"
)

// integerParsers routes the builtin integer kinds through radix.ParseAuto.
// env matches FuncMap entries by exact type, so named integer types and
// time.Duration keep their default parsers.
func integerParsers() map[reflect.Type]env.ParserFunc {
	return map[reflect.Type]env.ParserFunc{
		reflect.TypeFor[int]():    parseInteger[int],
		reflect.TypeFor[int8]():   parseInteger[int8],
		reflect.TypeFor[int16]():  parseInteger[int16],
		reflect.TypeFor[int32]():  parseInteger[int32],
		reflect.TypeFor[int64]():  parseInteger[int64],
		reflect.TypeFor[uint]():   parseInteger[uint],
		reflect.TypeFor[uint8]():  parseInteger[uint8],
		reflect.TypeFor[uint16](): parseInteger[uint16],
		reflect.TypeFor[uint32](): parseInteger[uint32],
		reflect.TypeFor[uint64](): parseInteger[uint64],
	}
}

func parseInteger[T constraints.Integer](v string) (any, error) {
	n, err := radix.ParseAuto[T](v)
	if err != nil {
		return nil, err
	}
	return n, nil
}
