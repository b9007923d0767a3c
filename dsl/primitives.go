package dsl

import skemats "github.com/reoring/skemats"

func primitive(k skemats.Kind) *skemats.Primitive { return &skemats.Primitive{Of: k} }

// String creates a string schema.
func String() *skemats.Primitive { return primitive(skemats.KindString) }

// Number creates a number schema.
func Number() *skemats.Primitive { return primitive(skemats.KindNumber) }

// Boolean creates a boolean schema.
func Boolean() *skemats.Primitive { return primitive(skemats.KindBoolean) }

// BigInt creates a bigint schema.
func BigInt() *skemats.Primitive { return primitive(skemats.KindBigInt) }

// Symbol creates a symbol schema.
func Symbol() *skemats.Primitive { return primitive(skemats.KindSymbol) }

// Null creates a null schema.
func Null() *skemats.Primitive { return primitive(skemats.KindNull) }

// Undefined creates an undefined schema.
func Undefined() *skemats.Primitive { return primitive(skemats.KindUndefined) }

// Void creates a void schema.
func Void() *skemats.Primitive { return primitive(skemats.KindVoid) }

// Never creates a never schema.
func Never() *skemats.Primitive { return primitive(skemats.KindNever) }

// Any creates an any schema.
func Any() *skemats.Primitive { return primitive(skemats.KindAny) }

// Unknown creates an unknown schema.
func Unknown() *skemats.Primitive { return primitive(skemats.KindUnknown) }

// Int creates an integer schema. TypeScript has no integer type, so it
// renders as number.
func Int() *skemats.Primitive { return primitive(skemats.KindInt) }

// NaN creates a NaN schema, rendered as number.
func NaN() *skemats.Primitive { return primitive(skemats.KindNaN) }

// Date creates a Date schema.
func Date() *skemats.Primitive { return primitive(skemats.KindDate) }

// File creates a File schema.
func File() *skemats.Primitive { return primitive(skemats.KindFile) }
