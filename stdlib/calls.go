// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdlib

import (
	"github.com/diemtools/txbuilder/diemtypes"
)

// AddCurrencyToAccount adds a zero Currency balance to the sending account.
// It aborts on chain if the account already holds a balance in Currency.
type AddCurrencyToAccount struct {
	Currency diemtypes.TypeTag
}

// ScriptID returns AddCurrencyToAccountScript.
func (*AddCurrencyToAccount) ScriptID() ScriptID { return AddCurrencyToAccountScript }

func (c *AddCurrencyToAccount) typeArgs() []diemtypes.TypeTag {
	return []diemtypes.TypeTag{c.Currency}
}

func (*AddCurrencyToAccount) args() []diemtypes.TransactionArgument { return nil }

func decodeAddCurrencyToAccount(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &AddCurrencyToAccount{
		Currency: tyArgs[0],
	}
}

// AddRecoveryRotationCapability stores the sending account's key rotation
// capability inside the recovery address resource held at RecoveryAddress.
type AddRecoveryRotationCapability struct {
	RecoveryAddress diemtypes.AccountAddress
}

// ScriptID returns AddRecoveryRotationCapabilityScript.
func (*AddRecoveryRotationCapability) ScriptID() ScriptID { return AddRecoveryRotationCapabilityScript }

func (*AddRecoveryRotationCapability) typeArgs() []diemtypes.TypeTag { return nil }

func (c *AddRecoveryRotationCapability) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.AddressArgument(c.RecoveryAddress),
	}
}

func decodeAddRecoveryRotationCapability(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &AddRecoveryRotationCapability{
		RecoveryAddress: addressArg(args[0]),
	}
}

// AddValidatorAndReconfigure adds ValidatorAddress to the validator set and
// triggers a reconfiguration.  Sent by the Diem root account.
type AddValidatorAndReconfigure struct {
	SlidingNonce     uint64
	ValidatorName    []byte
	ValidatorAddress diemtypes.AccountAddress
}

// ScriptID returns AddValidatorAndReconfigureScript.
func (*AddValidatorAndReconfigure) ScriptID() ScriptID { return AddValidatorAndReconfigureScript }

func (*AddValidatorAndReconfigure) typeArgs() []diemtypes.TypeTag { return nil }

func (c *AddValidatorAndReconfigure) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U64Argument(c.SlidingNonce),
		diemtypes.U8VectorArgument(c.ValidatorName),
		diemtypes.AddressArgument(c.ValidatorAddress),
	}
}

func decodeAddValidatorAndReconfigure(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &AddValidatorAndReconfigure{
		SlidingNonce:     u64Arg(args[0]),
		ValidatorName:    bytesArg(args[1]),
		ValidatorAddress: addressArg(args[2]),
	}
}

// Burn destroys the oldest preburn request of Token held at PreburnAddress.
type Burn struct {
	Token          diemtypes.TypeTag
	SlidingNonce   uint64
	PreburnAddress diemtypes.AccountAddress
}

// ScriptID returns BurnScript.
func (*Burn) ScriptID() ScriptID { return BurnScript }

func (c *Burn) typeArgs() []diemtypes.TypeTag {
	return []diemtypes.TypeTag{c.Token}
}

func (c *Burn) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U64Argument(c.SlidingNonce),
		diemtypes.AddressArgument(c.PreburnAddress),
	}
}

func decodeBurn(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &Burn{
		Token:          tyArgs[0],
		SlidingNonce:   u64Arg(args[0]),
		PreburnAddress: addressArg(args[1]),
	}
}

// BurnTxnFees burns the transaction fees collected in CoinType.
type BurnTxnFees struct {
	CoinType diemtypes.TypeTag
}

// ScriptID returns BurnTxnFeesScript.
func (*BurnTxnFees) ScriptID() ScriptID { return BurnTxnFeesScript }

func (c *BurnTxnFees) typeArgs() []diemtypes.TypeTag {
	return []diemtypes.TypeTag{c.CoinType}
}

func (*BurnTxnFees) args() []diemtypes.TransactionArgument { return nil }

func decodeBurnTxnFees(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &BurnTxnFees{
		CoinType: tyArgs[0],
	}
}

type CancelBurn struct {
	Token          diemtypes.TypeTag
	PreburnAddress diemtypes.AccountAddress
}

// ScriptID returns CancelBurnScript.
func (*CancelBurn) ScriptID() ScriptID { return CancelBurnScript }

func (c *CancelBurn) typeArgs() []diemtypes.TypeTag {
	return []diemtypes.TypeTag{c.Token}
}

func (c *CancelBurn) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.AddressArgument(c.PreburnAddress),
	}
}

func decodeCancelBurn(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &CancelBurn{
		Token:          tyArgs[0],
		PreburnAddress: addressArg(args[0]),
	}
}

// CreateChildVaspAccount creates a child VASP account at ChildAddress under
// the sending parent VASP and funds it with ChildInitialBalance of CoinType.
// When AddAllCurrencies is set the child receives a balance in every
// currency known to the system.
type CreateChildVaspAccount struct {
	CoinType            diemtypes.TypeTag
	ChildAddress        diemtypes.AccountAddress
	AuthKeyPrefix       []byte
	AddAllCurrencies    bool
	ChildInitialBalance uint64
}

// ScriptID returns CreateChildVaspAccountScript.
func (*CreateChildVaspAccount) ScriptID() ScriptID { return CreateChildVaspAccountScript }

func (c *CreateChildVaspAccount) typeArgs() []diemtypes.TypeTag {
	return []diemtypes.TypeTag{c.CoinType}
}

func (c *CreateChildVaspAccount) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.AddressArgument(c.ChildAddress),
		diemtypes.U8VectorArgument(c.AuthKeyPrefix),
		diemtypes.BoolArgument(c.AddAllCurrencies),
		diemtypes.U64Argument(c.ChildInitialBalance),
	}
}

func decodeCreateChildVaspAccount(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &CreateChildVaspAccount{
		CoinType:            tyArgs[0],
		ChildAddress:        addressArg(args[0]),
		AuthKeyPrefix:       bytesArg(args[1]),
		AddAllCurrencies:    boolArg(args[2]),
		ChildInitialBalance: u64Arg(args[3]),
	}
}

// CreateDesignatedDealer creates a designated dealer account at Addr.
type CreateDesignatedDealer struct {
	Currency         diemtypes.TypeTag
	SlidingNonce     uint64
	Addr             diemtypes.AccountAddress
	AuthKeyPrefix    []byte
	HumanName        []byte
	AddAllCurrencies bool
}

// ScriptID returns CreateDesignatedDealerScript.
func (*CreateDesignatedDealer) ScriptID() ScriptID { return CreateDesignatedDealerScript }

func (c *CreateDesignatedDealer) typeArgs() []diemtypes.TypeTag {
	return []diemtypes.TypeTag{c.Currency}
}

func (c *CreateDesignatedDealer) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U64Argument(c.SlidingNonce),
		diemtypes.AddressArgument(c.Addr),
		diemtypes.U8VectorArgument(c.AuthKeyPrefix),
		diemtypes.U8VectorArgument(c.HumanName),
		diemtypes.BoolArgument(c.AddAllCurrencies),
	}
}

func decodeCreateDesignatedDealer(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &CreateDesignatedDealer{
		Currency:         tyArgs[0],
		SlidingNonce:     u64Arg(args[0]),
		Addr:             addressArg(args[1]),
		AuthKeyPrefix:    bytesArg(args[2]),
		HumanName:        bytesArg(args[3]),
		AddAllCurrencies: boolArg(args[4]),
	}
}

// CreateParentVaspAccount creates a parent VASP account at NewAccountAddress.
type CreateParentVaspAccount struct {
	CoinType          diemtypes.TypeTag
	SlidingNonce      uint64
	NewAccountAddress diemtypes.AccountAddress
	AuthKeyPrefix     []byte
	HumanName         []byte
	AddAllCurrencies  bool
}

// ScriptID returns CreateParentVaspAccountScript.
func (*CreateParentVaspAccount) ScriptID() ScriptID { return CreateParentVaspAccountScript }

func (c *CreateParentVaspAccount) typeArgs() []diemtypes.TypeTag {
	return []diemtypes.TypeTag{c.CoinType}
}

func (c *CreateParentVaspAccount) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U64Argument(c.SlidingNonce),
		diemtypes.AddressArgument(c.NewAccountAddress),
		diemtypes.U8VectorArgument(c.AuthKeyPrefix),
		diemtypes.U8VectorArgument(c.HumanName),
		diemtypes.BoolArgument(c.AddAllCurrencies),
	}
}

func decodeCreateParentVaspAccount(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &CreateParentVaspAccount{
		CoinType:          tyArgs[0],
		SlidingNonce:      u64Arg(args[0]),
		NewAccountAddress: addressArg(args[1]),
		AuthKeyPrefix:     bytesArg(args[2]),
		HumanName:         bytesArg(args[3]),
		AddAllCurrencies:  boolArg(args[4]),
	}
}

// CreateRecoveryAddress turns the sending account into a recovery address.
type CreateRecoveryAddress struct{}

// ScriptID returns CreateRecoveryAddressScript.
func (*CreateRecoveryAddress) ScriptID() ScriptID { return CreateRecoveryAddressScript }

func (*CreateRecoveryAddress) typeArgs() []diemtypes.TypeTag { return nil }

func (*CreateRecoveryAddress) args() []diemtypes.TransactionArgument { return nil }

func decodeCreateRecoveryAddress(_ []diemtypes.TypeTag, _ []diemtypes.TransactionArgument) ScriptCall {
	return &CreateRecoveryAddress{}
}

// CreateValidatorAccount creates a validator account at NewAccountAddress.
type CreateValidatorAccount struct {
	SlidingNonce      uint64
	NewAccountAddress diemtypes.AccountAddress
	AuthKeyPrefix     []byte
	HumanName         []byte
}

// ScriptID returns CreateValidatorAccountScript.
func (*CreateValidatorAccount) ScriptID() ScriptID { return CreateValidatorAccountScript }

func (*CreateValidatorAccount) typeArgs() []diemtypes.TypeTag { return nil }

func (c *CreateValidatorAccount) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U64Argument(c.SlidingNonce),
		diemtypes.AddressArgument(c.NewAccountAddress),
		diemtypes.U8VectorArgument(c.AuthKeyPrefix),
		diemtypes.U8VectorArgument(c.HumanName),
	}
}

func decodeCreateValidatorAccount(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &CreateValidatorAccount{
		SlidingNonce:      u64Arg(args[0]),
		NewAccountAddress: addressArg(args[1]),
		AuthKeyPrefix:     bytesArg(args[2]),
		HumanName:         bytesArg(args[3]),
	}
}

// CreateValidatorOperatorAccount creates a validator operator account at
// NewAccountAddress.
type CreateValidatorOperatorAccount struct {
	SlidingNonce      uint64
	NewAccountAddress diemtypes.AccountAddress
	AuthKeyPrefix     []byte
	HumanName         []byte
}

// ScriptID returns CreateValidatorOperatorAccountScript.
func (*CreateValidatorOperatorAccount) ScriptID() ScriptID { return CreateValidatorOperatorAccountScript }

func (*CreateValidatorOperatorAccount) typeArgs() []diemtypes.TypeTag { return nil }

func (c *CreateValidatorOperatorAccount) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U64Argument(c.SlidingNonce),
		diemtypes.AddressArgument(c.NewAccountAddress),
		diemtypes.U8VectorArgument(c.AuthKeyPrefix),
		diemtypes.U8VectorArgument(c.HumanName),
	}
}

func decodeCreateValidatorOperatorAccount(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &CreateValidatorOperatorAccount{
		SlidingNonce:      u64Arg(args[0]),
		NewAccountAddress: addressArg(args[1]),
		AuthKeyPrefix:     bytesArg(args[2]),
		HumanName:         bytesArg(args[3]),
	}
}

// FreezeAccount freezes ToFreezeAccount.  Sent by the treasury compliance
// account.
type FreezeAccount struct {
	SlidingNonce    uint64
	ToFreezeAccount diemtypes.AccountAddress
}

// ScriptID returns FreezeAccountScript.
func (*FreezeAccount) ScriptID() ScriptID { return FreezeAccountScript }

func (*FreezeAccount) typeArgs() []diemtypes.TypeTag { return nil }

func (c *FreezeAccount) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U64Argument(c.SlidingNonce),
		diemtypes.AddressArgument(c.ToFreezeAccount),
	}
}

func decodeFreezeAccount(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &FreezeAccount{
		SlidingNonce:    u64Arg(args[0]),
		ToFreezeAccount: addressArg(args[1]),
	}
}

// PeerToPeerWithMetadata transfers Amount of Currency from the sender to
// Payee.
//
// Metadata is attached to the payment event.  Payments between VASPs above
// the dual attestation limit additionally require MetadataSignature, an
// ed25519 signature by the payee's compliance key over the metadata, sender
// address and amount.
type PeerToPeerWithMetadata struct {
	Currency          diemtypes.TypeTag
	Payee             diemtypes.AccountAddress
	Amount            uint64
	Metadata          []byte
	MetadataSignature []byte
}

// ScriptID returns PeerToPeerWithMetadataScript.
func (*PeerToPeerWithMetadata) ScriptID() ScriptID { return PeerToPeerWithMetadataScript }

func (c *PeerToPeerWithMetadata) typeArgs() []diemtypes.TypeTag {
	return []diemtypes.TypeTag{c.Currency}
}

func (c *PeerToPeerWithMetadata) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.AddressArgument(c.Payee),
		diemtypes.U64Argument(c.Amount),
		diemtypes.U8VectorArgument(c.Metadata),
		diemtypes.U8VectorArgument(c.MetadataSignature),
	}
}

func decodePeerToPeerWithMetadata(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &PeerToPeerWithMetadata{
		Currency:          tyArgs[0],
		Payee:             addressArg(args[0]),
		Amount:            u64Arg(args[1]),
		Metadata:          bytesArg(args[2]),
		MetadataSignature: bytesArg(args[3]),
	}
}

// Preburn moves Amount of Token from the sender's balance into a preburn
// request held at the sender's address.
type Preburn struct {
	Token  diemtypes.TypeTag
	Amount uint64
}

// ScriptID returns PreburnScript.
func (*Preburn) ScriptID() ScriptID { return PreburnScript }

func (c *Preburn) typeArgs() []diemtypes.TypeTag {
	return []diemtypes.TypeTag{c.Token}
}

func (c *Preburn) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U64Argument(c.Amount),
	}
}

func decodePreburn(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &Preburn{
		Token:  tyArgs[0],
		Amount: u64Arg(args[0]),
	}
}

type PublishSharedEd25519PublicKey struct {
	PublicKey []byte
}

// ScriptID returns PublishSharedEd25519PublicKeyScript.
func (*PublishSharedEd25519PublicKey) ScriptID() ScriptID { return PublishSharedEd25519PublicKeyScript }

func (*PublishSharedEd25519PublicKey) typeArgs() []diemtypes.TypeTag { return nil }

func (c *PublishSharedEd25519PublicKey) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U8VectorArgument(c.PublicKey),
	}
}

func decodePublishSharedEd25519PublicKey(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &PublishSharedEd25519PublicKey{
		PublicKey: bytesArg(args[0]),
	}
}

// RegisterValidatorConfig updates the configuration of ValidatorAccount
// without reconfiguring the network.
type RegisterValidatorConfig struct {
	ValidatorAccount          diemtypes.AccountAddress
	ConsensusPubkey           []byte
	ValidatorNetworkAddresses []byte
	FullnodeNetworkAddresses  []byte
}

// ScriptID returns RegisterValidatorConfigScript.
func (*RegisterValidatorConfig) ScriptID() ScriptID { return RegisterValidatorConfigScript }

func (*RegisterValidatorConfig) typeArgs() []diemtypes.TypeTag { return nil }

func (c *RegisterValidatorConfig) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.AddressArgument(c.ValidatorAccount),
		diemtypes.U8VectorArgument(c.ConsensusPubkey),
		diemtypes.U8VectorArgument(c.ValidatorNetworkAddresses),
		diemtypes.U8VectorArgument(c.FullnodeNetworkAddresses),
	}
}

func decodeRegisterValidatorConfig(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &RegisterValidatorConfig{
		ValidatorAccount:          addressArg(args[0]),
		ConsensusPubkey:           bytesArg(args[1]),
		ValidatorNetworkAddresses: bytesArg(args[2]),
		FullnodeNetworkAddresses:  bytesArg(args[3]),
	}
}

// RemoveValidatorAndReconfigure removes ValidatorAddress from the validator
// set and triggers a reconfiguration.
type RemoveValidatorAndReconfigure struct {
	SlidingNonce     uint64
	ValidatorName    []byte
	ValidatorAddress diemtypes.AccountAddress
}

// ScriptID returns RemoveValidatorAndReconfigureScript.
func (*RemoveValidatorAndReconfigure) ScriptID() ScriptID { return RemoveValidatorAndReconfigureScript }

func (*RemoveValidatorAndReconfigure) typeArgs() []diemtypes.TypeTag { return nil }

func (c *RemoveValidatorAndReconfigure) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U64Argument(c.SlidingNonce),
		diemtypes.U8VectorArgument(c.ValidatorName),
		diemtypes.AddressArgument(c.ValidatorAddress),
	}
}

func decodeRemoveValidatorAndReconfigure(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &RemoveValidatorAndReconfigure{
		SlidingNonce:     u64Arg(args[0]),
		ValidatorName:    bytesArg(args[1]),
		ValidatorAddress: addressArg(args[2]),
	}
}

// RotateAuthenticationKey replaces the sender's authentication key.
type RotateAuthenticationKey struct {
	NewKey []byte
}

// ScriptID returns RotateAuthenticationKeyScript.
func (*RotateAuthenticationKey) ScriptID() ScriptID { return RotateAuthenticationKeyScript }

func (*RotateAuthenticationKey) typeArgs() []diemtypes.TypeTag { return nil }

func (c *RotateAuthenticationKey) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U8VectorArgument(c.NewKey),
	}
}

func decodeRotateAuthenticationKey(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &RotateAuthenticationKey{
		NewKey: bytesArg(args[0]),
	}
}

type RotateAuthenticationKeyWithNonce struct {
	SlidingNonce uint64
	NewKey       []byte
}

// ScriptID returns RotateAuthenticationKeyWithNonceScript.
func (*RotateAuthenticationKeyWithNonce) ScriptID() ScriptID { return RotateAuthenticationKeyWithNonceScript }

func (*RotateAuthenticationKeyWithNonce) typeArgs() []diemtypes.TypeTag { return nil }

func (c *RotateAuthenticationKeyWithNonce) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U64Argument(c.SlidingNonce),
		diemtypes.U8VectorArgument(c.NewKey),
	}
}

func decodeRotateAuthenticationKeyWithNonce(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &RotateAuthenticationKeyWithNonce{
		SlidingNonce: u64Arg(args[0]),
		NewKey:       bytesArg(args[1]),
	}
}

// RotateAuthenticationKeyWithNonceAdmin rotates the authentication key of an
// account on its behalf.  Sent by the Diem root account as a writeset
// transaction with the target as a second signer.
type RotateAuthenticationKeyWithNonceAdmin struct {
	SlidingNonce uint64
	NewKey       []byte
}

// ScriptID returns RotateAuthenticationKeyWithNonceAdminScript.
func (*RotateAuthenticationKeyWithNonceAdmin) ScriptID() ScriptID { return RotateAuthenticationKeyWithNonceAdminScript }

func (*RotateAuthenticationKeyWithNonceAdmin) typeArgs() []diemtypes.TypeTag { return nil }

func (c *RotateAuthenticationKeyWithNonceAdmin) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U64Argument(c.SlidingNonce),
		diemtypes.U8VectorArgument(c.NewKey),
	}
}

func decodeRotateAuthenticationKeyWithNonceAdmin(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &RotateAuthenticationKeyWithNonceAdmin{
		SlidingNonce: u64Arg(args[0]),
		NewKey:       bytesArg(args[1]),
	}
}

// RotateAuthenticationKeyWithRecoveryAddress rotates the key of ToRecover
// using a capability stored at RecoveryAddress.
type RotateAuthenticationKeyWithRecoveryAddress struct {
	RecoveryAddress diemtypes.AccountAddress
	ToRecover       diemtypes.AccountAddress
	NewKey          []byte
}

// ScriptID returns RotateAuthenticationKeyWithRecoveryAddressScript.
func (*RotateAuthenticationKeyWithRecoveryAddress) ScriptID() ScriptID { return RotateAuthenticationKeyWithRecoveryAddressScript }

func (*RotateAuthenticationKeyWithRecoveryAddress) typeArgs() []diemtypes.TypeTag { return nil }

func (c *RotateAuthenticationKeyWithRecoveryAddress) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.AddressArgument(c.RecoveryAddress),
		diemtypes.AddressArgument(c.ToRecover),
		diemtypes.U8VectorArgument(c.NewKey),
	}
}

func decodeRotateAuthenticationKeyWithRecoveryAddress(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &RotateAuthenticationKeyWithRecoveryAddress{
		RecoveryAddress: addressArg(args[0]),
		ToRecover:       addressArg(args[1]),
		NewKey:          bytesArg(args[2]),
	}
}

// RotateDualAttestationInfo updates the base URL and compliance public key
// used for dual attestation.
type RotateDualAttestationInfo struct {
	NewUrl []byte
	NewKey []byte
}

// ScriptID returns RotateDualAttestationInfoScript.
func (*RotateDualAttestationInfo) ScriptID() ScriptID { return RotateDualAttestationInfoScript }

func (*RotateDualAttestationInfo) typeArgs() []diemtypes.TypeTag { return nil }

func (c *RotateDualAttestationInfo) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U8VectorArgument(c.NewUrl),
		diemtypes.U8VectorArgument(c.NewKey),
	}
}

func decodeRotateDualAttestationInfo(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &RotateDualAttestationInfo{
		NewUrl: bytesArg(args[0]),
		NewKey: bytesArg(args[1]),
	}
}

type RotateSharedEd25519PublicKey struct {
	PublicKey []byte
}

// ScriptID returns RotateSharedEd25519PublicKeyScript.
func (*RotateSharedEd25519PublicKey) ScriptID() ScriptID { return RotateSharedEd25519PublicKeyScript }

func (*RotateSharedEd25519PublicKey) typeArgs() []diemtypes.TypeTag { return nil }

func (c *RotateSharedEd25519PublicKey) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U8VectorArgument(c.PublicKey),
	}
}

func decodeRotateSharedEd25519PublicKey(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &RotateSharedEd25519PublicKey{
		PublicKey: bytesArg(args[0]),
	}
}

// SetValidatorConfigAndReconfigure updates the configuration of
// ValidatorAccount and reconfigures the network.
type SetValidatorConfigAndReconfigure struct {
	ValidatorAccount          diemtypes.AccountAddress
	ConsensusPubkey           []byte
	ValidatorNetworkAddresses []byte
	FullnodeNetworkAddresses  []byte
}

// ScriptID returns SetValidatorConfigAndReconfigureScript.
func (*SetValidatorConfigAndReconfigure) ScriptID() ScriptID { return SetValidatorConfigAndReconfigureScript }

func (*SetValidatorConfigAndReconfigure) typeArgs() []diemtypes.TypeTag { return nil }

func (c *SetValidatorConfigAndReconfigure) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.AddressArgument(c.ValidatorAccount),
		diemtypes.U8VectorArgument(c.ConsensusPubkey),
		diemtypes.U8VectorArgument(c.ValidatorNetworkAddresses),
		diemtypes.U8VectorArgument(c.FullnodeNetworkAddresses),
	}
}

func decodeSetValidatorConfigAndReconfigure(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &SetValidatorConfigAndReconfigure{
		ValidatorAccount:          addressArg(args[0]),
		ConsensusPubkey:           bytesArg(args[1]),
		ValidatorNetworkAddresses: bytesArg(args[2]),
		FullnodeNetworkAddresses:  bytesArg(args[3]),
	}
}

// SetValidatorOperator names OperatorAccount as the operator of the sending
// validator.  OperatorName must match the name recorded on chain.
type SetValidatorOperator struct {
	OperatorName    []byte
	OperatorAccount diemtypes.AccountAddress
}

// ScriptID returns SetValidatorOperatorScript.
func (*SetValidatorOperator) ScriptID() ScriptID { return SetValidatorOperatorScript }

func (*SetValidatorOperator) typeArgs() []diemtypes.TypeTag { return nil }

func (c *SetValidatorOperator) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U8VectorArgument(c.OperatorName),
		diemtypes.AddressArgument(c.OperatorAccount),
	}
}

func decodeSetValidatorOperator(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &SetValidatorOperator{
		OperatorName:    bytesArg(args[0]),
		OperatorAccount: addressArg(args[1]),
	}
}

type SetValidatorOperatorWithNonceAdmin struct {
	SlidingNonce    uint64
	OperatorName    []byte
	OperatorAccount diemtypes.AccountAddress
}

// ScriptID returns SetValidatorOperatorWithNonceAdminScript.
func (*SetValidatorOperatorWithNonceAdmin) ScriptID() ScriptID { return SetValidatorOperatorWithNonceAdminScript }

func (*SetValidatorOperatorWithNonceAdmin) typeArgs() []diemtypes.TypeTag { return nil }

func (c *SetValidatorOperatorWithNonceAdmin) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U64Argument(c.SlidingNonce),
		diemtypes.U8VectorArgument(c.OperatorName),
		diemtypes.AddressArgument(c.OperatorAccount),
	}
}

func decodeSetValidatorOperatorWithNonceAdmin(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &SetValidatorOperatorWithNonceAdmin{
		SlidingNonce:    u64Arg(args[0]),
		OperatorName:    bytesArg(args[1]),
		OperatorAccount: addressArg(args[2]),
	}
}

// TieredMint mints MintAmount of CoinType to a designated dealer within the
// limits of tier TierIndex.
type TieredMint struct {
	CoinType                diemtypes.TypeTag
	SlidingNonce            uint64
	DesignatedDealerAddress diemtypes.AccountAddress
	MintAmount              uint64
	TierIndex               uint64
}

// ScriptID returns TieredMintScript.
func (*TieredMint) ScriptID() ScriptID { return TieredMintScript }

func (c *TieredMint) typeArgs() []diemtypes.TypeTag {
	return []diemtypes.TypeTag{c.CoinType}
}

func (c *TieredMint) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U64Argument(c.SlidingNonce),
		diemtypes.AddressArgument(c.DesignatedDealerAddress),
		diemtypes.U64Argument(c.MintAmount),
		diemtypes.U64Argument(c.TierIndex),
	}
}

func decodeTieredMint(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &TieredMint{
		CoinType:                tyArgs[0],
		SlidingNonce:            u64Arg(args[0]),
		DesignatedDealerAddress: addressArg(args[1]),
		MintAmount:              u64Arg(args[2]),
		TierIndex:               u64Arg(args[3]),
	}
}

// UnfreezeAccount unfreezes ToUnfreezeAccount.
type UnfreezeAccount struct {
	SlidingNonce      uint64
	ToUnfreezeAccount diemtypes.AccountAddress
}

// ScriptID returns UnfreezeAccountScript.
func (*UnfreezeAccount) ScriptID() ScriptID { return UnfreezeAccountScript }

func (*UnfreezeAccount) typeArgs() []diemtypes.TypeTag { return nil }

func (c *UnfreezeAccount) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U64Argument(c.SlidingNonce),
		diemtypes.AddressArgument(c.ToUnfreezeAccount),
	}
}

func decodeUnfreezeAccount(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &UnfreezeAccount{
		SlidingNonce:      u64Arg(args[0]),
		ToUnfreezeAccount: addressArg(args[1]),
	}
}

// UpdateDiemVersion sets the on-chain Diem protocol version to Major.
type UpdateDiemVersion struct {
	SlidingNonce uint64
	Major        uint64
}

// ScriptID returns UpdateDiemVersionScript.
func (*UpdateDiemVersion) ScriptID() ScriptID { return UpdateDiemVersionScript }

func (*UpdateDiemVersion) typeArgs() []diemtypes.TypeTag { return nil }

func (c *UpdateDiemVersion) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U64Argument(c.SlidingNonce),
		diemtypes.U64Argument(c.Major),
	}
}

func decodeUpdateDiemVersion(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &UpdateDiemVersion{
		SlidingNonce: u64Arg(args[0]),
		Major:        u64Arg(args[1]),
	}
}

// UpdateDualAttestationLimit sets the travel rule threshold, in micro XDX.
type UpdateDualAttestationLimit struct {
	SlidingNonce     uint64
	NewMicroXdxLimit uint64
}

// ScriptID returns UpdateDualAttestationLimitScript.
func (*UpdateDualAttestationLimit) ScriptID() ScriptID { return UpdateDualAttestationLimitScript }

func (*UpdateDualAttestationLimit) typeArgs() []diemtypes.TypeTag { return nil }

func (c *UpdateDualAttestationLimit) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U64Argument(c.SlidingNonce),
		diemtypes.U64Argument(c.NewMicroXdxLimit),
	}
}

func decodeUpdateDualAttestationLimit(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &UpdateDualAttestationLimit{
		SlidingNonce:     u64Arg(args[0]),
		NewMicroXdxLimit: u64Arg(args[1]),
	}
}

// UpdateExchangeRate sets the XDX exchange rate of Currency to
// NewExchangeRateNumerator / NewExchangeRateDenominator.
type UpdateExchangeRate struct {
	Currency                   diemtypes.TypeTag
	SlidingNonce               uint64
	NewExchangeRateNumerator   uint64
	NewExchangeRateDenominator uint64
}

// ScriptID returns UpdateExchangeRateScript.
func (*UpdateExchangeRate) ScriptID() ScriptID { return UpdateExchangeRateScript }

func (c *UpdateExchangeRate) typeArgs() []diemtypes.TypeTag {
	return []diemtypes.TypeTag{c.Currency}
}

func (c *UpdateExchangeRate) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.U64Argument(c.SlidingNonce),
		diemtypes.U64Argument(c.NewExchangeRateNumerator),
		diemtypes.U64Argument(c.NewExchangeRateDenominator),
	}
}

func decodeUpdateExchangeRate(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &UpdateExchangeRate{
		Currency:                   tyArgs[0],
		SlidingNonce:               u64Arg(args[0]),
		NewExchangeRateNumerator:   u64Arg(args[1]),
		NewExchangeRateDenominator: u64Arg(args[2]),
	}
}

// UpdateMintingAbility enables or disables minting of Currency.
type UpdateMintingAbility struct {
	Currency     diemtypes.TypeTag
	AllowMinting bool
}

// ScriptID returns UpdateMintingAbilityScript.
func (*UpdateMintingAbility) ScriptID() ScriptID { return UpdateMintingAbilityScript }

func (c *UpdateMintingAbility) typeArgs() []diemtypes.TypeTag {
	return []diemtypes.TypeTag{c.Currency}
}

func (c *UpdateMintingAbility) args() []diemtypes.TransactionArgument {
	return []diemtypes.TransactionArgument{
		diemtypes.BoolArgument(c.AllowMinting),
	}
}

func decodeUpdateMintingAbility(tyArgs []diemtypes.TypeTag, args []diemtypes.TransactionArgument) ScriptCall {
	return &UpdateMintingAbility{
		Currency:     tyArgs[0],
		AllowMinting: boolArg(args[0]),
	}
}
