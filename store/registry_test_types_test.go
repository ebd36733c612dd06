// registry_test_types_test.go: distinct component types for registry-capacity tests
//
// Go generics can't be instantiated with a runtime-chosen type parameter, so
// exhausting the registry's 64 slots needs 65 distinct, textually-named types
// and a switch that dispatches Register[T] by index. Generated once by hand;
// nothing here carries meaning beyond "a distinct type".
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package store

type componentN0 struct{ v int }
type componentN1 struct{ v int }
type componentN2 struct{ v int }
type componentN3 struct{ v int }
type componentN4 struct{ v int }
type componentN5 struct{ v int }
type componentN6 struct{ v int }
type componentN7 struct{ v int }
type componentN8 struct{ v int }
type componentN9 struct{ v int }
type componentN10 struct{ v int }
type componentN11 struct{ v int }
type componentN12 struct{ v int }
type componentN13 struct{ v int }
type componentN14 struct{ v int }
type componentN15 struct{ v int }
type componentN16 struct{ v int }
type componentN17 struct{ v int }
type componentN18 struct{ v int }
type componentN19 struct{ v int }
type componentN20 struct{ v int }
type componentN21 struct{ v int }
type componentN22 struct{ v int }
type componentN23 struct{ v int }
type componentN24 struct{ v int }
type componentN25 struct{ v int }
type componentN26 struct{ v int }
type componentN27 struct{ v int }
type componentN28 struct{ v int }
type componentN29 struct{ v int }
type componentN30 struct{ v int }
type componentN31 struct{ v int }
type componentN32 struct{ v int }
type componentN33 struct{ v int }
type componentN34 struct{ v int }
type componentN35 struct{ v int }
type componentN36 struct{ v int }
type componentN37 struct{ v int }
type componentN38 struct{ v int }
type componentN39 struct{ v int }
type componentN40 struct{ v int }
type componentN41 struct{ v int }
type componentN42 struct{ v int }
type componentN43 struct{ v int }
type componentN44 struct{ v int }
type componentN45 struct{ v int }
type componentN46 struct{ v int }
type componentN47 struct{ v int }
type componentN48 struct{ v int }
type componentN49 struct{ v int }
type componentN50 struct{ v int }
type componentN51 struct{ v int }
type componentN52 struct{ v int }
type componentN53 struct{ v int }
type componentN54 struct{ v int }
type componentN55 struct{ v int }
type componentN56 struct{ v int }
type componentN57 struct{ v int }
type componentN58 struct{ v int }
type componentN59 struct{ v int }
type componentN60 struct{ v int }
type componentN61 struct{ v int }
type componentN62 struct{ v int }
type componentN63 struct{ v int }
type componentN64 struct{ v int }

func registerComponentN(s *Store, n int) error {
	var err error
	switch n {
	case 0:
		_, err = Register[componentN0](s)
	case 1:
		_, err = Register[componentN1](s)
	case 2:
		_, err = Register[componentN2](s)
	case 3:
		_, err = Register[componentN3](s)
	case 4:
		_, err = Register[componentN4](s)
	case 5:
		_, err = Register[componentN5](s)
	case 6:
		_, err = Register[componentN6](s)
	case 7:
		_, err = Register[componentN7](s)
	case 8:
		_, err = Register[componentN8](s)
	case 9:
		_, err = Register[componentN9](s)
	case 10:
		_, err = Register[componentN10](s)
	case 11:
		_, err = Register[componentN11](s)
	case 12:
		_, err = Register[componentN12](s)
	case 13:
		_, err = Register[componentN13](s)
	case 14:
		_, err = Register[componentN14](s)
	case 15:
		_, err = Register[componentN15](s)
	case 16:
		_, err = Register[componentN16](s)
	case 17:
		_, err = Register[componentN17](s)
	case 18:
		_, err = Register[componentN18](s)
	case 19:
		_, err = Register[componentN19](s)
	case 20:
		_, err = Register[componentN20](s)
	case 21:
		_, err = Register[componentN21](s)
	case 22:
		_, err = Register[componentN22](s)
	case 23:
		_, err = Register[componentN23](s)
	case 24:
		_, err = Register[componentN24](s)
	case 25:
		_, err = Register[componentN25](s)
	case 26:
		_, err = Register[componentN26](s)
	case 27:
		_, err = Register[componentN27](s)
	case 28:
		_, err = Register[componentN28](s)
	case 29:
		_, err = Register[componentN29](s)
	case 30:
		_, err = Register[componentN30](s)
	case 31:
		_, err = Register[componentN31](s)
	case 32:
		_, err = Register[componentN32](s)
	case 33:
		_, err = Register[componentN33](s)
	case 34:
		_, err = Register[componentN34](s)
	case 35:
		_, err = Register[componentN35](s)
	case 36:
		_, err = Register[componentN36](s)
	case 37:
		_, err = Register[componentN37](s)
	case 38:
		_, err = Register[componentN38](s)
	case 39:
		_, err = Register[componentN39](s)
	case 40:
		_, err = Register[componentN40](s)
	case 41:
		_, err = Register[componentN41](s)
	case 42:
		_, err = Register[componentN42](s)
	case 43:
		_, err = Register[componentN43](s)
	case 44:
		_, err = Register[componentN44](s)
	case 45:
		_, err = Register[componentN45](s)
	case 46:
		_, err = Register[componentN46](s)
	case 47:
		_, err = Register[componentN47](s)
	case 48:
		_, err = Register[componentN48](s)
	case 49:
		_, err = Register[componentN49](s)
	case 50:
		_, err = Register[componentN50](s)
	case 51:
		_, err = Register[componentN51](s)
	case 52:
		_, err = Register[componentN52](s)
	case 53:
		_, err = Register[componentN53](s)
	case 54:
		_, err = Register[componentN54](s)
	case 55:
		_, err = Register[componentN55](s)
	case 56:
		_, err = Register[componentN56](s)
	case 57:
		_, err = Register[componentN57](s)
	case 58:
		_, err = Register[componentN58](s)
	case 59:
		_, err = Register[componentN59](s)
	case 60:
		_, err = Register[componentN60](s)
	case 61:
		_, err = Register[componentN61](s)
	case 62:
		_, err = Register[componentN62](s)
	case 63:
		_, err = Register[componentN63](s)
	case 64:
		_, err = Register[componentN64](s)
	default:
		panic("registerComponentN: index out of range")
	}
	return err
}
