// Package namelist reads lists of personal names from text, JSON or YAML.
//
//	f, _ := os.Open("team.yaml")
//	names, err := namelist.Read(f, namelist.DetectFormat(f.Name()))
package namelist
