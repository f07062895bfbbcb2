package types

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Funds authorization method tags. Unknown tags fail closed.
const (
	AuthTagDirect       byte = 0x00
	AuthTagDelegatedSig byte = 0x01
	AuthTagPermit       byte = 0x02
	AuthTagTimeWindowed byte = 0x03
)

// AuthEnv carries the module-side capabilities an authorization needs to
// move funds: the bank, the replay-protection store, and the payment
// route. Built by the settlement keeper per call.
type AuthEnv struct {
	Bank         BankKeeper
	Nonces       NonceConsumer
	PaymentDenom string
	ModuleName   string
}

// FundsAuthorization is the capability presented by a buyer to let the
// settlement module pull the payment. Pull is all or nothing.
type FundsAuthorization interface {
	Method() byte
	Pull(ctx sdk.Context, env AuthEnv, payer sdk.AccAddress, amount math.Int) error
}

// DecodeFundsAuthorization parses a (tag, payload) pair into a concrete
// authorization. Unknown tags are rejected.
func DecodeFundsAuthorization(tag byte, payload []byte) (FundsAuthorization, error) {
	switch tag {
	case AuthTagDirect:
		return DirectAuthorization{}, nil
	case AuthTagDelegatedSig:
		var auth DelegatedSigAuthorization
		if err := json.Unmarshal(payload, &auth); err != nil {
			return nil, ErrInvalidAuthorization.Wrapf("delegated payload: %s", err)
		}
		return auth, nil
	case AuthTagPermit:
		var auth PermitAuthorization
		if err := json.Unmarshal(payload, &auth); err != nil {
			return nil, ErrInvalidAuthorization.Wrapf("permit payload: %s", err)
		}
		return auth, nil
	case AuthTagTimeWindowed:
		var auth TimeWindowedAuthorization
		if err := json.Unmarshal(payload, &auth); err != nil {
			return nil, ErrInvalidAuthorization.Wrapf("windowed payload: %s", err)
		}
		return auth, nil
	default:
		return nil, ErrUnknownAuthorizationTag.Wrapf("tag 0x%02x", tag)
	}
}

// DirectAuthorization is a plain pre-approved transfer: the buyer signed
// the settlement message itself, so the bank pull needs no extra proof.
type DirectAuthorization struct{}

func (DirectAuthorization) Method() byte { return AuthTagDirect }

func (DirectAuthorization) Pull(ctx sdk.Context, env AuthEnv, payer sdk.AccAddress, amount math.Int) error {
	return env.Bank.SendCoinsFromAccountToModule(ctx, payer, env.ModuleName, Coin(env.PaymentDenom, amount))
}

// DelegatedSigAuthorization authorizes the pull with a detached secp256k1
// signature by the payer's key over the payer, amount and recipient.
type DelegatedSigAuthorization struct {
	PubKey    []byte `json:"pub_key"`
	Signature []byte `json:"signature"`
}

func (DelegatedSigAuthorization) Method() byte { return AuthTagDelegatedSig }

// DelegatedAuthDigest is the message a delegated authorization signs:
// sha256(payer || amount || recipient).
func DelegatedAuthDigest(payer sdk.AccAddress, amount math.Int, recipient string) []byte {
	h := sha256.New()
	h.Write(payer.Bytes())
	h.Write([]byte(amount.String()))
	h.Write([]byte(recipient))
	return h.Sum(nil)
}

func (a DelegatedSigAuthorization) Pull(ctx sdk.Context, env AuthEnv, payer sdk.AccAddress, amount math.Int) error {
	if err := verifyPayerSignature(a.PubKey, a.Signature, payer, DelegatedAuthDigest(payer, amount, env.ModuleName)); err != nil {
		return err
	}
	return env.Bank.SendCoinsFromAccountToModule(ctx, payer, env.ModuleName, Coin(env.PaymentDenom, amount))
}

// PermitAuthorization is a delegated signature with a deadline.
type PermitAuthorization struct {
	PubKey    []byte `json:"pub_key"`
	Signature []byte `json:"signature"`
	Deadline  int64  `json:"deadline"`
}

func (PermitAuthorization) Method() byte { return AuthTagPermit }

// PermitAuthDigest is the message a permit signs:
// sha256(payer || amount || recipient || bigEndian64(deadline)).
func PermitAuthDigest(payer sdk.AccAddress, amount math.Int, recipient string, deadline int64) []byte {
	h := sha256.New()
	h.Write(payer.Bytes())
	h.Write([]byte(amount.String()))
	h.Write([]byte(recipient))
	h.Write(beInt64(deadline))
	return h.Sum(nil)
}

func (a PermitAuthorization) Pull(ctx sdk.Context, env AuthEnv, payer sdk.AccAddress, amount math.Int) error {
	if ctx.BlockTime().Unix() > a.Deadline {
		return ErrAuthorizationExpired.Wrapf("deadline %d", a.Deadline)
	}
	if err := verifyPayerSignature(a.PubKey, a.Signature, payer, PermitAuthDigest(payer, amount, env.ModuleName, a.Deadline)); err != nil {
		return err
	}
	return env.Bank.SendCoinsFromAccountToModule(ctx, payer, env.ModuleName, Coin(env.PaymentDenom, amount))
}

// TimeWindowedAuthorization is valid only inside [NotBefore, NotAfter]
// and burns a single-use nonce on success.
type TimeWindowedAuthorization struct {
	PubKey    []byte `json:"pub_key"`
	Signature []byte `json:"signature"`
	NotBefore int64  `json:"not_before"`
	NotAfter  int64  `json:"not_after"`
	Nonce     uint64 `json:"nonce"`
}

func (TimeWindowedAuthorization) Method() byte { return AuthTagTimeWindowed }

// WindowedAuthDigest is the message a time-windowed authorization signs:
// sha256(payer || amount || recipient || window || nonce).
func WindowedAuthDigest(payer sdk.AccAddress, amount math.Int, recipient string, notBefore, notAfter int64, nonce uint64) []byte {
	h := sha256.New()
	h.Write(payer.Bytes())
	h.Write([]byte(amount.String()))
	h.Write([]byte(recipient))
	h.Write(beInt64(notBefore))
	h.Write(beInt64(notAfter))
	h.Write(beUint64(nonce))
	return h.Sum(nil)
}

func (a TimeWindowedAuthorization) Pull(ctx sdk.Context, env AuthEnv, payer sdk.AccAddress, amount math.Int) error {
	now := ctx.BlockTime().Unix()
	if now < a.NotBefore || now > a.NotAfter {
		return ErrAuthorizationExpired.Wrapf("window [%d, %d], now %d", a.NotBefore, a.NotAfter, now)
	}
	if env.Nonces.IsConsumed(ctx, payer, a.Nonce) {
		return ErrNonceConsumed.Wrapf("nonce %d", a.Nonce)
	}
	digest := WindowedAuthDigest(payer, amount, env.ModuleName, a.NotBefore, a.NotAfter, a.Nonce)
	if err := verifyPayerSignature(a.PubKey, a.Signature, payer, digest); err != nil {
		return err
	}
	if err := env.Nonces.Consume(ctx, payer, a.Nonce); err != nil {
		return err
	}
	return env.Bank.SendCoinsFromAccountToModule(ctx, payer, env.ModuleName, Coin(env.PaymentDenom, amount))
}

// verifyPayerSignature checks that the public key belongs to the payer
// address and that the signature verifies over the digest.
func verifyPayerSignature(pubKeyBz, signature []byte, payer sdk.AccAddress, digest []byte) error {
	if len(pubKeyBz) == 0 || len(signature) == 0 {
		return ErrInvalidAuthorization.Wrap("missing key or signature")
	}
	pubKey := secp256k1.PubKey{Key: pubKeyBz}
	if !payer.Equals(sdk.AccAddress(pubKey.Address())) {
		return ErrInvalidAuthorization.Wrap("public key does not belong to payer")
	}
	if !pubKey.VerifySignature(digest, signature) {
		return ErrInvalidAuthorization.Wrap("signature verification failed")
	}
	return nil
}

func beInt64(v int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(v))
	return bz
}

func beUint64(v uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, v)
	return bz
}
