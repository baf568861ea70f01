package gamedata

import "strings"

// MK8Tracks is the full Mario Kart 8 Deluxe catalog, base game first then the
// Booster Course Pass, in cup order (24 cups of 4).
var MK8Tracks = []string{
	// Base game nitro cups
	"Mario Kart Stadium", "Water Park", "Sweet Sweet Canyon", "Thwomp Ruins",
	"Mario Circuit", "Toad Harbor", "Twisted Mansion", "Shy Guy Falls",
	"Sunshine Airport", "Dolphin Shoals", "Electrodrome", "Mount Wario",
	"Cloudtop Cruise", "Bone-Dry Dunes", "Bowser's Castle", "Rainbow Road",
	// Base game retro cups
	"Wii Moo Moo Meadows", "GBA Mario Circuit", "DS Cheep Cheep Beach", "N64 Toad's Turnpike",
	"GCN Dry Dry Desert", "SNES Donut Plains 3", "N64 Royal Raceway", "3DS DK Jungle",
	"DS Wario Stadium", "GCN Sherbet Land", "3DS Music Park", "N64 Yoshi Valley",
	"DS Tick-Tock Clock", "3DS Piranha Plant Slide", "Wii Grumble Volcano", "N64 Rainbow Road",
	"3DS Neo Bowser City", "GBA Ribbon Road", "Super Bell Subway", "Big Blue",
	"GCN Yoshi Circuit", "Excitebike Arena", "Dragon Driftway", "Mute City",
	"Wii Wario's Gold Mine", "SNES Rainbow Road", "Ice Ice Outpost", "Hyrule Circuit",
	"GCN Baby Park", "GBA Cheese Land", "Wild Woods", "Animal Crossing",
	// Booster Course Pass
	"Tour Paris Promenade", "3DS Toad Circuit", "N64 Choco Mountain", "Wii Coconut Mall",
	"Tour Tokyo Blur", "DS Shroom Ridge", "GBA Sky Garden", "Tour Ninja Hideaway",
	"Tour New York Minute", "SNES Mario Circuit 3", "N64 Kalimari Desert", "DS Waluigi Pinball",
	"Tour Sydney Sprint", "GBA Snow Land", "Wii Mushroom Gorge", "Sky-High Sundae",
	"Tour London Loop", "GBA Boo Lake", "3DS Rock Rock Mountain", "Wii Maple Treeway",
	"Tour Berlin Byways", "DS Peach Gardens", "Tour Merry Mountain", "3DS Rainbow Road",
	"Tour Amsterdam Drift", "GBA Riverside Park", "Wii DK Summit", "Yoshi's Island",
	"Tour Bangkok Rush", "DS Mario Circuit", "GCN Waluigi Stadium", "Tour Singapore Speedway",
	"Tour Athens Dash", "GCN Daisy Cruiser", "Wii Moonview Highway", "Squeaky Clean Sprint",
	"Tour Los Angeles Laps", "GBA Sunset Wilds", "Wii Koopa Cape", "Tour Vancouver Velocity",
	"Tour Rome Avanti", "GCN DK Mountain", "Wii Daisy Circuit", "Piranha Plant Cove",
	"Tour Madrid Drive", "3DS Rosalina's Ice World", "SNES Bowser Castle 3", "Wii Rainbow Road",
}

// CupNames, in catalog order. Cup i covers MK8Tracks[i*4 : i*4+4].
var CupNames = []string{
	"Mushroom Cup", "Flower Cup", "Star Cup", "Special Cup",
	"Shell Cup", "Banana Cup", "Leaf Cup", "Lightning Cup",
	"Bell Cup", "Egg Cup", "Triforce Cup", "Crossing Cup",
	"Golden Dash Cup", "Lucky Cat Cup", "Turnip Cup", "Propeller Cup",
	"Rock Cup", "Moon Cup", "Fruit Cup", "Boomerang Cup",
	"Feather Cup", "Cherry Cup", "Acorn Cup", "Spiny Cup",
}

var GameModes = []string{"150cc", "200cc"}

var ItemsSettings = []string{"shrooms", "no_items"}

// CupTracks returns the four tracks of cup index i.
func CupTracks(i int) []string {
	return MK8Tracks[i*4 : i*4+4]
}

// IsValidTrack reports whether name is in the catalog.
func IsValidTrack(name string) bool {
	for _, t := range MK8Tracks {
		if t == name {
			return true
		}
	}
	return false
}

// IsValidMode reports whether mode is a known engine class.
func IsValidMode(mode string) bool {
	for _, m := range GameModes {
		if m == mode {
			return true
		}
	}
	return false
}

// IsValidItems reports whether items is a known items setting.
func IsValidItems(items string) bool {
	for _, i := range ItemsSettings {
		if i == items {
			return true
		}
	}
	return false
}

// IsTourTrack reports whether a track comes from the Tour-sourced subset,
// recognizable by the name prefix.
func IsTourTrack(name string) bool {
	return strings.HasPrefix(name, "Tour ")
}

// TourTracks returns the Tour-sourced subset in catalog order.
func TourTracks() []string {
	var out []string
	for _, t := range MK8Tracks {
		if IsTourTrack(t) {
			out = append(out, t)
		}
	}
	return out
}

// NonTourTracks returns everything else in catalog order.
func NonTourTracks() []string {
	var out []string
	for _, t := range MK8Tracks {
		if !IsTourTrack(t) {
			out = append(out, t)
		}
	}
	return out
}
