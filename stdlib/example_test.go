// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdlib_test

import (
	"fmt"

	"github.com/diemtools/txbuilder/diemtypes"
	"github.com/diemtools/txbuilder/stdlib"
)

// This example demonstrates building a preburn script and recognizing it
// again.
func ExampleDecodeScript() {
	script := stdlib.EncodeScript(&stdlib.Preburn{
		Token:  diemtypes.CurrencyTag("XDX"),
		Amount: 100,
	})

	call, err := stdlib.DecodeScript(&script)
	if err != nil {
		fmt.Println(err)
		return
	}
	switch c := call.(type) {
	case *stdlib.Preburn:
		fmt.Printf("preburn %d of %v\n", c.Amount, c.Token)
	}

	// Output:
	// preburn 100 of 0x00000000000000000000000000000001::XDX::XDX
}

// This example demonstrates how a script with the wrong argument is
// reported.
func ExampleDecodeScript_typeMismatch() {
	script := stdlib.EncodeScript(&stdlib.Preburn{
		Token:  diemtypes.CurrencyTag("XDX"),
		Amount: 100,
	})
	script.Args[0] = diemtypes.BoolArgument(true)

	_, err := stdlib.DecodeScript(&script)
	if stdlib.IsErrorCode(err, stdlib.ErrArgumentTypeMismatch) {
		fmt.Println(err)
	}

	// Output:
	// preburn: argument 0 (amount) expected U64, got Bool
}
