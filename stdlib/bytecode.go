// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdlib

// Stand-in Move binaries, one per template.  They carry the Move magic and the
// script's module, function and signature but are not the compiled release
// scripts.  The blobs are opaque to this package and are matched byte for byte
// when decoding.
var (
	addCurrencyToAccountCode = hexToBytes("" +
		"a11ceb0b010000000501000203020405060206081e0726100000000100000107" +
		"0b4469656d4163636f756e740c6164645f63757272656e6379046d61696e0000" +
		"000000000000000000000000000101000103110002")

	addRecoveryRotationCapabilityCode = hexToBytes("" +
		"a11ceb0b0100000005010004030408050c03060f590768100000000100020000" +
		"010300000207050f5265636f76657279416464726573730b4469656d4163636f" +
		"756e74176164645f726f746174696f6e5f6361706162696c6974791f65787472" +
		"6163745f6b65795f726f746174696f6e5f6361706162696c697479046d61696e" +
		"00000000000000000000000000000001000002070b001100110102")

	addValidatorAndReconfigureCode = hexToBytes("" +
		"a11ceb0b010000000501000603060c0512050617600777100000000100020003" +
		"0000010400000205000004070306050c536c6964696e674e6f6e63650f56616c" +
		"696461746f72436f6e6669670a4469656d53797374656d157265636f72645f6e" +
		"6f6e63655f6f725f61626f72740e6765745f68756d616e5f6e616d650d616464" +
		"5f76616c696461746f72046d61696e0000000000000000000000000000000100" +
		"00040d0b000b010b0211001101110202")

	burnCode = hexToBytes("" +
		"a11ceb0b0100000005010004030408050c040610320742100000000100020000" +
		"01030000030703050c536c6964696e674e6f6e6365044469656d157265636f72" +
		"645f6e6f6e63655f6f725f61626f7274046275726e046d61696e000000000000" +
		"00000000000000000001010003090b000b011100110102")

	burnTxnFeesCode = hexToBytes("" +
		"a11ceb0b010000000501000203020405060206081e0726100000000100000107" +
		"0e5472616e73616374696f6e466565096275726e5f66656573046d61696e0000" +
		"000000000000000000000000000101000103110002")

	cancelBurnCode = hexToBytes("" +
		"a11ceb0b010000000501000203020405060306091d0726100000000100000207" +
		"050b4469656d4163636f756e740b63616e63656c5f6275726e046d61696e0000" +
		"0000000000000000000000000001010002050b00110002")

	createChildVaspAccountCode = hexToBytes("" +
		"a11ceb0b010000000501000203021005120606186c0784011000000001000000" +
		"02000000030000000400000507050601030b4469656d4163636f756e74196372" +
		"656174655f6368696c645f766173705f6163636f756e741b657874726163745f" +
		"77697468647261775f6361706162696c697479087061795f66726f6d1b726573" +
		"746f72655f77697468647261775f6361706162696c697479046d61696e000000" +
		"00000000000000000000000001010005110b000b010b020b0311001101110211" +
		"0302")

	createDesignatedDealerCode = hexToBytes("" +
		"a11ceb0b0100000005010004030408050c0706134d0760100000000100020000" +
		"01030000060703050606010c536c6964696e674e6f6e63650b4469656d416363" +
		"6f756e74157265636f72645f6e6f6e63655f6f725f61626f7274186372656174" +
		"655f64657369676e617465645f6465616c6572046d61696e0000000000000000" +
		"00000000000000010100060f0b000b010b020b030b041100110102")

	createParentVaspAccountCode = hexToBytes("" +
		"a11ceb0b0100000005010004030408050c0706134f0762100000000100020000" +
		"01030000060703050606010c536c6964696e674e6f6e63650b4469656d416363" +
		"6f756e74157265636f72645f6e6f6e63655f6f725f61626f72741a6372656174" +
		"655f706172656e745f766173705f6163636f756e74046d61696e000000000000" +
		"000000000000000000010100060f0b000b010b020b030b041100110102")

	createRecoveryAddressCode = hexToBytes("" +
		"a11ceb0b0100000005010004030408050c02060e490757100000000100020000" +
		"0103000001070f5265636f76657279416464726573730b4469656d4163636f75" +
		"6e74077075626c6973681f657874726163745f6b65795f726f746174696f6e5f" +
		"6361706162696c697479046d61696e0000000000000000000000000000000100" +
		"0001051100110102")

	createValidatorAccountCode = hexToBytes("" +
		"a11ceb0b0100000005010004030408050c0606124d075f100000000100020000" +
		"010300000507030506060c536c6964696e674e6f6e63650b4469656d4163636f" +
		"756e74157265636f72645f6e6f6e63655f6f725f61626f727418637265617465" +
		"5f76616c696461746f725f6163636f756e74046d61696e000000000000000000" +
		"000000000000010000050d0b000b010b020b031100110102")

	createValidatorOperatorAccountCode = hexToBytes("" +
		"a11ceb0b0100000005010004030408050c060612560768100000000100020000" +
		"010300000507030506060c536c6964696e674e6f6e63650b4469656d4163636f" +
		"756e74157265636f72645f6e6f6e63655f6f725f61626f727421637265617465" +
		"5f76616c696461746f725f6f70657261746f725f6163636f756e74046d61696e" +
		"000000000000000000000000000000010000050d0b000b010b020b0311001101" +
		"02")

	freezeAccountCode = hexToBytes("" +
		"a11ceb0b0100000005010004030408050c040610470757100000000100020000" +
		"01030000030703050c536c6964696e674e6f6e63650f4163636f756e74467265" +
		"657a696e67157265636f72645f6e6f6e63655f6f725f61626f72740e66726565" +
		"7a655f6163636f756e74046d61696e0000000000000000000000000000000100" +
		"0003090b000b011100110102")

	peerToPeerWithMetadataCode = hexToBytes("" +
		"a11ceb0b010000000501000203020c050e060614520766100000000100000002" +
		"0000000300000507050306060b4469656d4163636f756e741b65787472616374" +
		"5f77697468647261775f6361706162696c697479087061795f66726f6d1b7265" +
		"73746f72655f77697468647261775f6361706162696c697479046d61696e0000" +
		"00000000000000000000000000010100050f0b000b010b020b03110011011102" +
		"02")

	preburnCode = hexToBytes("" +
		"a11ceb0b010000000501000203020c050e030611510762100000000100000002" +
		"0000000300000207030b4469656d4163636f756e741b657874726163745f7769" +
		"7468647261775f6361706162696c697479077072656275726e1b726573746f72" +
		"655f77697468647261775f6361706162696c697479046d61696e000000000000" +
		"00000000000000000001010002090b0011001101110202")

	publishSharedEd25519PublicKeyCode = hexToBytes("" +
		"a11ceb0b0100000005010002030204050603060924072d100000000100000207" +
		"0616536861726564456432353531395075626c69634b6579077075626c697368" +
		"046d61696e00000000000000000000000000000001000002050b00110002")

	registerValidatorConfigCode = hexToBytes("" +
		"a11ceb0b0100000005010002030204050606060c20072c100000000100000507" +
		"050606060f56616c696461746f72436f6e6669670a7365745f636f6e66696704" +
		"6d61696e000000000000000000000000000000010000050b0b000b010b020b03" +
		"110002")

	removeValidatorAndReconfigureCode = hexToBytes("" +
		"a11ceb0b010000000501000603060c051205061763077a100000000100020003" +
		"0000010400000205000004070306050c536c6964696e674e6f6e63650f56616c" +
		"696461746f72436f6e6669670a4469656d53797374656d157265636f72645f6e" +
		"6f6e63655f6f725f61626f72740e6765745f68756d616e5f6e616d651072656d" +
		"6f76655f76616c696461746f72046d61696e0000000000000000000000000000" +
		"00010000040d0b000b010b0211001101110202")

	rotateAuthenticationKeyCode = hexToBytes("" +
		"a11ceb0b010000000501000203020c050e0306116b077c100000000100000002" +
		"0000000300000207060b4469656d4163636f756e741f657874726163745f6b65" +
		"795f726f746174696f6e5f6361706162696c69747919726f746174655f617574" +
		"68656e7469636174696f6e5f6b65791f726573746f72655f6b65795f726f7461" +
		"74696f6e5f6361706162696c697479046d61696e000000000000000000000000" +
		"00000001000002090b0011001101110202")

	rotateAuthenticationKeyWithNonceCode = hexToBytes("" +
		"a11ceb0b010000000501000403041005140406188e0107a60110000000010002" +
		"0000010300000104000001050000030703060c536c6964696e674e6f6e63650b" +
		"4469656d4163636f756e74157265636f72645f6e6f6e63655f6f725f61626f72" +
		"741f657874726163745f6b65795f726f746174696f6e5f6361706162696c6974" +
		"7919726f746174655f61757468656e7469636174696f6e5f6b65791f72657374" +
		"6f72655f6b65795f726f746174696f6e5f6361706162696c697479046d61696e" +
		"000000000000000000000000000000010000030d0b000b011100110111021103" +
		"02")

	rotateAuthenticationKeyWithNonceAdminCode = hexToBytes("" +
		"a11ceb0b010000000501000403041005140506198e0107a70110000000010002" +
		"000001030000010400000105000004070703060c536c6964696e674e6f6e6365" +
		"0b4469656d4163636f756e74157265636f72645f6e6f6e63655f6f725f61626f" +
		"72741f657874726163745f6b65795f726f746174696f6e5f6361706162696c69" +
		"747919726f746174655f61757468656e7469636174696f6e5f6b65791f726573" +
		"746f72655f6b65795f726f746174696f6e5f6361706162696c697479046d6169" +
		"6e000000000000000000000000000000010000030d0b000b0111001101110211" +
		"0302")

	rotateAuthenticationKeyWithRecoveryAddressCode = hexToBytes("" +
		"a11ceb0b0100000005010002030204050605060b2f073a100000000100000407" +
		"0505060f5265636f766572794164647265737319726f746174655f6175746865" +
		"6e7469636174696f6e5f6b6579046d61696e0000000000000000000000000000" +
		"0001000004090b000b010b02110002")

	rotateDualAttestationInfoCode = hexToBytes("" +
		"a11ceb0b0100000005010002030208050a04060e420750100000000100000002" +
		"0000030706060f4475616c4174746573746174696f6e0f726f746174655f6261" +
		"73655f75726c1c726f746174655f636f6d706c69616e63655f7075626c69635f" +
		"6b6579046d61696e00000000000000000000000000000001000003090b000b01" +
		"1100110102")

	rotateSharedEd25519PublicKeyCode = hexToBytes("" +
		"a11ceb0b01000000050100020302040506030609270730100000000100000207" +
		"0616536861726564456432353531395075626c69634b65790a726f746174655f" +
		"6b6579046d61696e00000000000000000000000000000001000002050b001100" +
		"02")

	setValidatorConfigAndReconfigureCode = hexToBytes("" +
		"a11ceb0b0100000005010004030408050c06061249075b100000000100020000" +
		"010300000507050606060f56616c696461746f72436f6e6669670a4469656d53" +
		"797374656d0a7365745f636f6e6669671d7570646174655f636f6e6669675f61" +
		"6e645f7265636f6e666967757265046d61696e00000000000000000000000000" +
		"0000010000050d0b000b010b020b031100110102")

	setValidatorOperatorCode = hexToBytes("" +
		"a11ceb0b0100000005010004030408050c040610490759100000000100020000" +
		"01030000030706051756616c696461746f724f70657261746f72436f6e666967" +
		"0f56616c696461746f72436f6e6669670e6765745f68756d616e5f6e616d650c" +
		"7365745f6f70657261746f72046d61696e000000000000000000000000000000" +
		"01000003090b000b011100110102")

	setValidatorOperatorWithNonceAdminCode = hexToBytes("" +
		"a11ceb0b010000000501000603060c05120606186c0784011000000001000200" +
		"03000001040000020500000507070306050c536c6964696e674e6f6e63651756" +
		"616c696461746f724f70657261746f72436f6e6669670f56616c696461746f72" +
		"436f6e666967157265636f72645f6e6f6e63655f6f725f61626f72740e676574" +
		"5f68756d616e5f6e616d650c7365745f6f70657261746f72046d61696e000000" +
		"000000000000000000000000010000040d0b000b010b0211001101110202")

	tieredMintCode = hexToBytes("" +
		"a11ceb0b0100000005010004030408050c060612400752100000000100020000" +
		"010300000507030503030c536c6964696e674e6f6e63650b4469656d4163636f" +
		"756e74157265636f72645f6e6f6e63655f6f725f61626f72740b746965726564" +
		"5f6d696e74046d61696e000000000000000000000000000000010100050d0b00" +
		"0b010b020b031100110102")

	unfreezeAccountCode = hexToBytes("" +
		"a11ceb0b0100000005010004030408050c040610490759100000000100020000" +
		"01030000030703050c536c6964696e674e6f6e63650f4163636f756e74467265" +
		"657a696e67157265636f72645f6e6f6e63655f6f725f61626f727410756e6672" +
		"65657a655f6163636f756e74046d61696e000000000000000000000000000000" +
		"01000003090b000b011100110102")

	updateDiemVersionCode = hexToBytes("" +
		"a11ceb0b0100000005010004030408050c040610380748100000000100020000" +
		"01030000030703030c536c6964696e674e6f6e63650b4469656d56657273696f" +
		"6e157265636f72645f6e6f6e63655f6f725f61626f727403736574046d61696e" +
		"00000000000000000000000000000001000003090b000b011100110102")

	updateDualAttestationLimitCode = hexToBytes("" +
		"a11ceb0b0100000005010004030408050c0406104c075c100000000100020000" +
		"01030000030703030c536c6964696e674e6f6e63650f4475616c417474657374" +
		"6174696f6e157265636f72645f6e6f6e63655f6f725f61626f7274137365745f" +
		"6d6963726f6469656d5f6c696d6974046d61696e000000000000000000000000" +
		"00000001000003090b000b011100110102")

	updateExchangeRateCode = hexToBytes("" +
		"a11ceb0b010000000501000603060c051205061768077f100000000100020003" +
		"0000010400000205000004070303030c536c6964696e674e6f6e63650c466978" +
		"6564506f696e743332044469656d157265636f72645f6e6f6e63655f6f725f61" +
		"626f7274146372656174655f66726f6d5f726174696f6e616c18757064617465" +
		"5f7864785f65786368616e67655f72617465046d61696e000000000000000000" +
		"000000000000010100040d0b000b010b0211001101110202")

	updateMintingAbilityCode = hexToBytes("" +
		"a11ceb0b0100000005010002030204050603060921072a100000000100000207" +
		"01044469656d167570646174655f6d696e74696e675f6162696c697479046d61" +
		"696e00000000000000000000000000000001010002050b00110002")
)
