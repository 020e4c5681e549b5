// SPDX-License-Identifier: MPL-2.0

package main

import cmd "chainres/cmd/chainres"

func main() {
	cmd.Execute()
}
