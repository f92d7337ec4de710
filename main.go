// SPDX-License-Identifier: MPL-2.0

// chatlaunch starts the Offline LM Studio Programs chat UI through the
// first available Python interpreter.
package main

import cmd "chatlaunch-cli/cmd/chatlaunch"

func main() {
	cmd.Execute()
}
