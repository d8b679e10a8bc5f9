// SPDX-License-Identifier: MPL-2.0

package main

import "ipsbench/cmd/ipsbench"

func main() {
	cmd.Execute()
}
