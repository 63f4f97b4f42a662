// Package threeds holds the 3-D Secure authentication result passed to the
// gateway alongside a card authorization.
package threeds

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/sirosfoundation/go-fac/pkg/message"
)

// Field names as they appear in parameter maps and on the wire
const (
	FieldECIIndicator         = "ECIIndicator"
	FieldAuthenticationResult = "AuthenticationResult"
	FieldTransactionStain     = "TransactionStain"
	FieldCAVV                 = "CAVV"
	FieldProtocolVersion      = "ProtocolVersion"
	FieldDSTransID            = "DSTransId"
)

// ECI indicators
const (
	ECIVisaFull              = "05"
	ECIVisaNotEnrolled       = "06"
	ECIMastercardFull        = "02"
	ECIMastercardNotEnrolled = "01"
)

// Authentication results
const (
	AuthenticationAttempted    = "A"
	AuthenticationNotSupported = "N"
	AuthenticationFailed       = "U"
	AuthenticationSuccess      = "Y"
)

// ElementName is the field group name used when the details are encoded
const ElementName = "ThreeDSecure"

type fields struct {
	ECIIndicator         *string `mapstructure:"ECIIndicator"`
	AuthenticationResult *string `mapstructure:"AuthenticationResult"`
	TransactionStain     *string `mapstructure:"TransactionStain"`
	CAVV                 *string `mapstructure:"CAVV"`
	ProtocolVersion      *string `mapstructure:"ProtocolVersion"`
	DSTransID            *string `mapstructure:"DSTransId"`
}

// ThreeDSecure is an immutable bundle of 3-D Secure authentication data.
// Every field may be absent; accessors return "" for absent fields.
type ThreeDSecure struct {
	f fields
}

// New builds a ThreeDSecure from a map keyed by the Field* names. Unknown
// keys are ignored; scalar values are converted to strings.
func New(details map[string]any) (*ThreeDSecure, error) {
	var f fields

	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &f,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating 3DS decoder: %w", err)
	}

	if err := d.Decode(details); err != nil {
		return nil, fmt.Errorf("decoding 3DS details: %w", err)
	}

	return &ThreeDSecure{f: f}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (t *ThreeDSecure) ECIIndicator() string         { return deref(t.f.ECIIndicator) }
func (t *ThreeDSecure) AuthenticationResult() string { return deref(t.f.AuthenticationResult) }
func (t *ThreeDSecure) TransactionStain() string     { return deref(t.f.TransactionStain) }
func (t *ThreeDSecure) CAVV() string                 { return deref(t.f.CAVV) }
func (t *ThreeDSecure) ProtocolVersion() string      { return deref(t.f.ProtocolVersion) }
func (t *ThreeDSecure) DSTransID() string            { return deref(t.f.DSTransID) }

// IsAuthenticationSuccess reports whether the card holder was fully
// authenticated.
func (t *ThreeDSecure) IsAuthenticationSuccess() bool {
	return t.f.AuthenticationResult != nil && *t.f.AuthenticationResult == AuthenticationSuccess
}

// Fields renders the populated details as a field group in wire order
func (t *ThreeDSecure) Fields() message.Object {
	var obj message.Object
	add := func(name string, v *string) {
		if v != nil {
			obj = obj.Set(name, message.Scalar(*v))
		}
	}
	add(FieldECIIndicator, t.f.ECIIndicator)
	add(FieldAuthenticationResult, t.f.AuthenticationResult)
	add(FieldTransactionStain, t.f.TransactionStain)
	add(FieldCAVV, t.f.CAVV)
	add(FieldProtocolVersion, t.f.ProtocolVersion)
	add(FieldDSTransID, t.f.DSTransID)
	return obj
}
