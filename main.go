// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package main

import "yatfs/cmd"

func main() {
	cmd.Execute()
}
