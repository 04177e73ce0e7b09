// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	FilePermissions      = 0644
	DirectoryPermissions = 0755
)

var (
	// Directory is the root of everything swiss stores on disk.
	Directory = filepath.Join(xdg.DataHome, "swiss")

	// TournamentDirectory holds one yaml file per saved tournament.
	TournamentDirectory = filepath.Join(Directory, "tournaments")
)

// TryMkdir creates dir and any missing parents.
func TryMkdir(dir string) error {
	return os.MkdirAll(dir, DirectoryPermissions)
}
