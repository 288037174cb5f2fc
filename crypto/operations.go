package crypto

import (
	"context"
	"fmt"
)

// OperationType defines the direction of an operation
type OperationType string

const (
	OperationTypeEncrypt OperationType = "encrypt"
	OperationTypeDecrypt OperationType = "decrypt"
)

// Params carries the per-call cipher parameters of an operation.
type Params struct {
	Key   string `json:"key" yaml:"key"`
	Shift int    `json:"shift,omitempty" yaml:"shift,omitempty"`
}

// Operation is a named text transform that can be looked up and chained
type Operation interface {
	// Name returns the unique identifier for this operation
	Name() string

	Type() OperationType

	Description() string

	// Execute applies the operation to the input text
	Execute(ctx context.Context, input string, params Params) (string, error)

	// Inverse returns the name of the operation that undoes this one
	Inverse() (string, bool)
}

// BaseOperation provides the descriptive part of an operation
type BaseOperation struct {
	NameValue        string
	TypeValue        OperationType
	DescriptionValue string
	InverseName      string
}

func (b *BaseOperation) Name() string {
	return b.NameValue
}

func (b *BaseOperation) Type() OperationType {
	return b.TypeValue
}

func (b *BaseOperation) Description() string {
	return b.DescriptionValue
}

func (b *BaseOperation) Inverse() (string, bool) {
	return b.InverseName, b.InverseName != ""
}

// TransformOp adapts a System method to the Operation interface
type TransformOp struct {
	BaseOperation
	Fn func(input string, params Params) (string, error)
}

func (op *TransformOp) Execute(ctx context.Context, input string, params Params) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return op.Fn(input, params)
}

// SimpleEncryptOp etc. are the names of the built-in operations.
const (
	SimpleEncryptOp   = "simple_encrypt"
	SimpleDecryptOp   = "simple_decrypt"
	PolyEncryptOp     = "poly_encrypt"
	PolyDecryptOp     = "poly_decrypt"
	SBlockEncryptOp   = "sblock_encrypt"
	SBlockDecryptOp   = "sblock_decrypt"
	EnhancedEncryptOp = "enhanced_encrypt"
	EnhancedDecryptOp = "enhanced_decrypt"
)

func (s *System) shiftOrDefault(shift int) int {
	if shift == 0 {
		return s.shift
	}
	return shift
}

// Operations returns the built-in operations bound to s.
func (s *System) Operations() []Operation {
	keyed := func(fn func(text, key string) string) func(string, Params) (string, error) {
		return func(input string, p Params) (string, error) {
			if err := ValidateKey(p.Key); err != nil {
				return "", err
			}
			return fn(input, p.Key), nil
		}
	}
	poly := func(fn func(text, key string, shift int) string) func(string, Params) (string, error) {
		return func(input string, p Params) (string, error) {
			if err := ValidateKey(p.Key); err != nil {
				return "", err
			}
			shift := s.shiftOrDefault(p.Shift)
			if err := ValidateShift(shift); err != nil {
				return "", err
			}
			return fn(input, p.Key, shift), nil
		}
	}
	blocks := func(fn func(text, key string) (string, error)) func(string, Params) (string, error) {
		return func(input string, p Params) (string, error) {
			return fn(input, p.Key)
		}
	}
	enhanced := func(fn func(text, key string, shift int) (string, error)) func(string, Params) (string, error) {
		return func(input string, p Params) (string, error) {
			if err := ValidateKey(p.Key); err != nil {
				return "", err
			}
			shift := s.shiftOrDefault(p.Shift)
			if err := ValidateShift(shift); err != nil {
				return "", err
			}
			return fn(input, p.Key, shift)
		}
	}

	op := func(name string, typ OperationType, inverse, desc string, fn func(string, Params) (string, error)) Operation {
		return &TransformOp{
			BaseOperation: BaseOperation{
				NameValue:        name,
				TypeValue:        typ,
				DescriptionValue: desc,
				InverseName:      inverse,
			},
			Fn: fn,
		}
	}

	return []Operation{
		op(SimpleEncryptOp, OperationTypeEncrypt, SimpleDecryptOp,
			"Trithemius shift over a keyword-permuted alphabet", keyed(s.EncryptSimple)),
		op(SimpleDecryptOp, OperationTypeDecrypt, SimpleEncryptOp,
			"Inverse of simple_encrypt", keyed(s.DecryptSimple)),
		op(PolyEncryptOp, OperationTypeEncrypt, PolyDecryptOp,
			"Polyalphabetic Trithemius cipher with a self-shifting table", poly(s.EncryptPolyalphabetic)),
		op(PolyDecryptOp, OperationTypeDecrypt, PolyEncryptOp,
			"Inverse of poly_encrypt", poly(s.DecryptPolyalphabetic)),
		op(SBlockEncryptOp, OperationTypeEncrypt, SBlockDecryptOp,
			"Keyed 4-symbol S-blocks (16-symbol key, text multiple of 4)", blocks(s.EncryptSBlocks)),
		op(SBlockDecryptOp, OperationTypeDecrypt, SBlockEncryptOp,
			"Inverse of sblock_encrypt", blocks(s.DecryptSBlocks)),
		op(EnhancedEncryptOp, OperationTypeEncrypt, EnhancedDecryptOp,
			"Polyalphabetic cipher followed by padded S-blocks", enhanced(s.EncryptEnhanced)),
		op(EnhancedDecryptOp, OperationTypeDecrypt, EnhancedEncryptOp,
			"Inverse of enhanced_encrypt", enhanced(s.DecryptEnhanced)),
	}
}

// NewRegistry returns a registry holding the built-in operations of s.
func NewRegistry(s *System) *Registry {
	r := &Registry{ops: make(map[string]Operation)}
	for _, op := range s.Operations() {
		if err := r.Register(op); err != nil {
			panic(fmt.Sprintf("crypto: register %s: %v", op.Name(), err))
		}
	}
	return r
}
