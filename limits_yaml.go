// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package cbor

import "sigs.k8s.io/yaml"

// LoadLimitsYAML decodes a Limits value from a YAML (or JSON, which
// is valid YAML) document, for services that embed the decoder behind
// a config file rather than constructing Limits in Go.
//
// Example:
//
//	maxDepth: 64
//	maxItems: 100000
//	maxStringBytes: 1048576
func LoadLimitsYAML(doc []byte) (*Limits, error) {
	var l Limits
	if err := yaml.Unmarshal(doc, &l); err != nil {
		return nil, err
	}
	return &l, nil
}
