// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdlib

import (
	"github.com/diemtools/txbuilder/diemtypes"
)

// ScriptID identifies one template of the catalogue.  The set is closed: every
// value below numScripts has exactly one template.
type ScriptID uint8

// Templates known to this version of the package.
const (
	AddCurrencyToAccountScript ScriptID = iota
	AddRecoveryRotationCapabilityScript
	AddValidatorAndReconfigureScript
	BurnScript
	BurnTxnFeesScript
	CancelBurnScript
	CreateChildVaspAccountScript
	CreateDesignatedDealerScript
	CreateParentVaspAccountScript
	CreateRecoveryAddressScript
	CreateValidatorAccountScript
	CreateValidatorOperatorAccountScript
	FreezeAccountScript
	PeerToPeerWithMetadataScript
	PreburnScript
	PublishSharedEd25519PublicKeyScript
	RegisterValidatorConfigScript
	RemoveValidatorAndReconfigureScript
	RotateAuthenticationKeyScript
	RotateAuthenticationKeyWithNonceScript
	RotateAuthenticationKeyWithNonceAdminScript
	RotateAuthenticationKeyWithRecoveryAddressScript
	RotateDualAttestationInfoScript
	RotateSharedEd25519PublicKeyScript
	SetValidatorConfigAndReconfigureScript
	SetValidatorOperatorScript
	SetValidatorOperatorWithNonceAdminScript
	TieredMintScript
	UnfreezeAccountScript
	UpdateDiemVersionScript
	UpdateDualAttestationLimitScript
	UpdateExchangeRateScript
	UpdateMintingAbilityScript

	// numScripts is the number of templates.  It must remain last.
	numScripts
)

// catalogue houses the definition of every template indexed by ScriptID.
var catalogue = [numScripts]templateDef{
	AddCurrencyToAccountScript: {
		name:       "add_currency_to_account",
		code:       addCurrencyToAccountCode,
		typeParams: []string{"currency"},
		decode:     decodeAddCurrencyToAccount,
	},
	AddRecoveryRotationCapabilityScript: {
		name: "add_recovery_rotation_capability",
		code: addRecoveryRotationCapabilityCode,
		params: []Param{
			{Name: "recovery_address", Kind: diemtypes.KindAddress},
		},
		decode: decodeAddRecoveryRotationCapability,
	},
	AddValidatorAndReconfigureScript: {
		name: "add_validator_and_reconfigure",
		code: addValidatorAndReconfigureCode,
		params: []Param{
			{Name: "sliding_nonce", Kind: diemtypes.KindU64},
			{Name: "validator_name", Kind: diemtypes.KindU8Vector},
			{Name: "validator_address", Kind: diemtypes.KindAddress},
		},
		decode: decodeAddValidatorAndReconfigure,
	},
	BurnScript: {
		name:       "burn",
		code:       burnCode,
		typeParams: []string{"token"},
		params: []Param{
			{Name: "sliding_nonce", Kind: diemtypes.KindU64},
			{Name: "preburn_address", Kind: diemtypes.KindAddress},
		},
		decode: decodeBurn,
	},
	BurnTxnFeesScript: {
		name:       "burn_txn_fees",
		code:       burnTxnFeesCode,
		typeParams: []string{"coin_type"},
		decode:     decodeBurnTxnFees,
	},
	CancelBurnScript: {
		name:       "cancel_burn",
		code:       cancelBurnCode,
		typeParams: []string{"token"},
		params: []Param{
			{Name: "preburn_address", Kind: diemtypes.KindAddress},
		},
		decode: decodeCancelBurn,
	},
	CreateChildVaspAccountScript: {
		name:       "create_child_vasp_account",
		code:       createChildVaspAccountCode,
		typeParams: []string{"coin_type"},
		params: []Param{
			{Name: "child_address", Kind: diemtypes.KindAddress},
			{Name: "auth_key_prefix", Kind: diemtypes.KindU8Vector},
			{Name: "add_all_currencies", Kind: diemtypes.KindBool},
			{Name: "child_initial_balance", Kind: diemtypes.KindU64},
		},
		decode: decodeCreateChildVaspAccount,
	},
	CreateDesignatedDealerScript: {
		name:       "create_designated_dealer",
		code:       createDesignatedDealerCode,
		typeParams: []string{"currency"},
		params: []Param{
			{Name: "sliding_nonce", Kind: diemtypes.KindU64},
			{Name: "addr", Kind: diemtypes.KindAddress},
			{Name: "auth_key_prefix", Kind: diemtypes.KindU8Vector},
			{Name: "human_name", Kind: diemtypes.KindU8Vector},
			{Name: "add_all_currencies", Kind: diemtypes.KindBool},
		},
		decode: decodeCreateDesignatedDealer,
	},
	CreateParentVaspAccountScript: {
		name:       "create_parent_vasp_account",
		code:       createParentVaspAccountCode,
		typeParams: []string{"coin_type"},
		params: []Param{
			{Name: "sliding_nonce", Kind: diemtypes.KindU64},
			{Name: "new_account_address", Kind: diemtypes.KindAddress},
			{Name: "auth_key_prefix", Kind: diemtypes.KindU8Vector},
			{Name: "human_name", Kind: diemtypes.KindU8Vector},
			{Name: "add_all_currencies", Kind: diemtypes.KindBool},
		},
		decode: decodeCreateParentVaspAccount,
	},
	CreateRecoveryAddressScript: {
		name:   "create_recovery_address",
		code:   createRecoveryAddressCode,
		decode: decodeCreateRecoveryAddress,
	},
	CreateValidatorAccountScript: {
		name: "create_validator_account",
		code: createValidatorAccountCode,
		params: []Param{
			{Name: "sliding_nonce", Kind: diemtypes.KindU64},
			{Name: "new_account_address", Kind: diemtypes.KindAddress},
			{Name: "auth_key_prefix", Kind: diemtypes.KindU8Vector},
			{Name: "human_name", Kind: diemtypes.KindU8Vector},
		},
		decode: decodeCreateValidatorAccount,
	},
	CreateValidatorOperatorAccountScript: {
		name: "create_validator_operator_account",
		code: createValidatorOperatorAccountCode,
		params: []Param{
			{Name: "sliding_nonce", Kind: diemtypes.KindU64},
			{Name: "new_account_address", Kind: diemtypes.KindAddress},
			{Name: "auth_key_prefix", Kind: diemtypes.KindU8Vector},
			{Name: "human_name", Kind: diemtypes.KindU8Vector},
		},
		decode: decodeCreateValidatorOperatorAccount,
	},
	FreezeAccountScript: {
		name: "freeze_account",
		code: freezeAccountCode,
		params: []Param{
			{Name: "sliding_nonce", Kind: diemtypes.KindU64},
			{Name: "to_freeze_account", Kind: diemtypes.KindAddress},
		},
		decode: decodeFreezeAccount,
	},
	PeerToPeerWithMetadataScript: {
		name:       "peer_to_peer_with_metadata",
		code:       peerToPeerWithMetadataCode,
		typeParams: []string{"currency"},
		params: []Param{
			{Name: "payee", Kind: diemtypes.KindAddress},
			{Name: "amount", Kind: diemtypes.KindU64},
			{Name: "metadata", Kind: diemtypes.KindU8Vector},
			{Name: "metadata_signature", Kind: diemtypes.KindU8Vector},
		},
		decode: decodePeerToPeerWithMetadata,
	},
	PreburnScript: {
		name:       "preburn",
		code:       preburnCode,
		typeParams: []string{"token"},
		params: []Param{
			{Name: "amount", Kind: diemtypes.KindU64},
		},
		decode: decodePreburn,
	},
	PublishSharedEd25519PublicKeyScript: {
		name: "publish_shared_ed25519_public_key",
		code: publishSharedEd25519PublicKeyCode,
		params: []Param{
			{Name: "public_key", Kind: diemtypes.KindU8Vector},
		},
		decode: decodePublishSharedEd25519PublicKey,
	},
	RegisterValidatorConfigScript: {
		name: "register_validator_config",
		code: registerValidatorConfigCode,
		params: []Param{
			{Name: "validator_account", Kind: diemtypes.KindAddress},
			{Name: "consensus_pubkey", Kind: diemtypes.KindU8Vector},
			{Name: "validator_network_addresses", Kind: diemtypes.KindU8Vector},
			{Name: "fullnode_network_addresses", Kind: diemtypes.KindU8Vector},
		},
		decode: decodeRegisterValidatorConfig,
	},
	RemoveValidatorAndReconfigureScript: {
		name: "remove_validator_and_reconfigure",
		code: removeValidatorAndReconfigureCode,
		params: []Param{
			{Name: "sliding_nonce", Kind: diemtypes.KindU64},
			{Name: "validator_name", Kind: diemtypes.KindU8Vector},
			{Name: "validator_address", Kind: diemtypes.KindAddress},
		},
		decode: decodeRemoveValidatorAndReconfigure,
	},
	RotateAuthenticationKeyScript: {
		name: "rotate_authentication_key",
		code: rotateAuthenticationKeyCode,
		params: []Param{
			{Name: "new_key", Kind: diemtypes.KindU8Vector},
		},
		decode: decodeRotateAuthenticationKey,
	},
	RotateAuthenticationKeyWithNonceScript: {
		name: "rotate_authentication_key_with_nonce",
		code: rotateAuthenticationKeyWithNonceCode,
		params: []Param{
			{Name: "sliding_nonce", Kind: diemtypes.KindU64},
			{Name: "new_key", Kind: diemtypes.KindU8Vector},
		},
		decode: decodeRotateAuthenticationKeyWithNonce,
	},
	RotateAuthenticationKeyWithNonceAdminScript: {
		name: "rotate_authentication_key_with_nonce_admin",
		code: rotateAuthenticationKeyWithNonceAdminCode,
		params: []Param{
			{Name: "sliding_nonce", Kind: diemtypes.KindU64},
			{Name: "new_key", Kind: diemtypes.KindU8Vector},
		},
		decode: decodeRotateAuthenticationKeyWithNonceAdmin,
	},
	RotateAuthenticationKeyWithRecoveryAddressScript: {
		name: "rotate_authentication_key_with_recovery_address",
		code: rotateAuthenticationKeyWithRecoveryAddressCode,
		params: []Param{
			{Name: "recovery_address", Kind: diemtypes.KindAddress},
			{Name: "to_recover", Kind: diemtypes.KindAddress},
			{Name: "new_key", Kind: diemtypes.KindU8Vector},
		},
		decode: decodeRotateAuthenticationKeyWithRecoveryAddress,
	},
	RotateDualAttestationInfoScript: {
		name: "rotate_dual_attestation_info",
		code: rotateDualAttestationInfoCode,
		params: []Param{
			{Name: "new_url", Kind: diemtypes.KindU8Vector},
			{Name: "new_key", Kind: diemtypes.KindU8Vector},
		},
		decode: decodeRotateDualAttestationInfo,
	},
	RotateSharedEd25519PublicKeyScript: {
		name: "rotate_shared_ed25519_public_key",
		code: rotateSharedEd25519PublicKeyCode,
		params: []Param{
			{Name: "public_key", Kind: diemtypes.KindU8Vector},
		},
		decode: decodeRotateSharedEd25519PublicKey,
	},
	SetValidatorConfigAndReconfigureScript: {
		name: "set_validator_config_and_reconfigure",
		code: setValidatorConfigAndReconfigureCode,
		params: []Param{
			{Name: "validator_account", Kind: diemtypes.KindAddress},
			{Name: "consensus_pubkey", Kind: diemtypes.KindU8Vector},
			{Name: "validator_network_addresses", Kind: diemtypes.KindU8Vector},
			{Name: "fullnode_network_addresses", Kind: diemtypes.KindU8Vector},
		},
		decode: decodeSetValidatorConfigAndReconfigure,
	},
	SetValidatorOperatorScript: {
		name: "set_validator_operator",
		code: setValidatorOperatorCode,
		params: []Param{
			{Name: "operator_name", Kind: diemtypes.KindU8Vector},
			{Name: "operator_account", Kind: diemtypes.KindAddress},
		},
		decode: decodeSetValidatorOperator,
	},
	SetValidatorOperatorWithNonceAdminScript: {
		name: "set_validator_operator_with_nonce_admin",
		code: setValidatorOperatorWithNonceAdminCode,
		params: []Param{
			{Name: "sliding_nonce", Kind: diemtypes.KindU64},
			{Name: "operator_name", Kind: diemtypes.KindU8Vector},
			{Name: "operator_account", Kind: diemtypes.KindAddress},
		},
		decode: decodeSetValidatorOperatorWithNonceAdmin,
	},
	TieredMintScript: {
		name:       "tiered_mint",
		code:       tieredMintCode,
		typeParams: []string{"coin_type"},
		params: []Param{
			{Name: "sliding_nonce", Kind: diemtypes.KindU64},
			{Name: "designated_dealer_address", Kind: diemtypes.KindAddress},
			{Name: "mint_amount", Kind: diemtypes.KindU64},
			{Name: "tier_index", Kind: diemtypes.KindU64},
		},
		decode: decodeTieredMint,
	},
	UnfreezeAccountScript: {
		name: "unfreeze_account",
		code: unfreezeAccountCode,
		params: []Param{
			{Name: "sliding_nonce", Kind: diemtypes.KindU64},
			{Name: "to_unfreeze_account", Kind: diemtypes.KindAddress},
		},
		decode: decodeUnfreezeAccount,
	},
	UpdateDiemVersionScript: {
		name: "update_diem_version",
		code: updateDiemVersionCode,
		params: []Param{
			{Name: "sliding_nonce", Kind: diemtypes.KindU64},
			{Name: "major", Kind: diemtypes.KindU64},
		},
		decode: decodeUpdateDiemVersion,
	},
	UpdateDualAttestationLimitScript: {
		name: "update_dual_attestation_limit",
		code: updateDualAttestationLimitCode,
		params: []Param{
			{Name: "sliding_nonce", Kind: diemtypes.KindU64},
			{Name: "new_micro_xdx_limit", Kind: diemtypes.KindU64},
		},
		decode: decodeUpdateDualAttestationLimit,
	},
	UpdateExchangeRateScript: {
		name:       "update_exchange_rate",
		code:       updateExchangeRateCode,
		typeParams: []string{"currency"},
		params: []Param{
			{Name: "sliding_nonce", Kind: diemtypes.KindU64},
			{Name: "new_exchange_rate_numerator", Kind: diemtypes.KindU64},
			{Name: "new_exchange_rate_denominator", Kind: diemtypes.KindU64},
		},
		decode: decodeUpdateExchangeRate,
	},
	UpdateMintingAbilityScript: {
		name:       "update_minting_ability",
		code:       updateMintingAbilityCode,
		typeParams: []string{"currency"},
		params: []Param{
			{Name: "allow_minting", Kind: diemtypes.KindBool},
		},
		decode: decodeUpdateMintingAbility,
	},
}
