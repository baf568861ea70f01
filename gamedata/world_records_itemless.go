package gamedata

// WorldRecordsItemless maps each track to the shroomless (no items) 150cc
// world record. Times are maintained by hand from community leaderboards.
var WorldRecordsItemless = map[string]string{
	"Mario Kart Stadium": "2:01.070",
	"Water Park": "1:40.190",
	"Sweet Sweet Canyon": "1:48.663",
	"Thwomp Ruins": "1:57.722",
	"Mario Circuit": "2:19.490",
	"Toad Harbor": "1:56.661",
	"Twisted Mansion": "2:22.524",
	"Shy Guy Falls": "1:36.237",
	"Sunshine Airport": "2:21.395",
	"Dolphin Shoals": "2:18.576",
	"Electrodrome": "1:41.211",
	"Mount Wario": "2:11.027",
	"Cloudtop Cruise": "2:17.508",
	"Bone-Dry Dunes": "2:00.823",
	"Bowser's Castle": "2:33.531",
	"Rainbow Road": "2:16.833",
	"Wii Moo Moo Meadows": "2:31.310",
	"GBA Mario Circuit": "2:13.796",
	"DS Cheep Cheep Beach": "2:16.780",
	"N64 Toad's Turnpike": "2:11.417",
	"GCN Dry Dry Desert": "2:33.309",
	"SNES Donut Plains 3": "1:37.112",
	"N64 Royal Raceway": "2:09.105",
	"3DS DK Jungle": "1:45.966",
	"DS Wario Stadium": "2:11.443",
	"GCN Sherbet Land": "2:27.928",
	"3DS Music Park": "1:48.122",
	"N64 Yoshi Valley": "2:27.713",
	"DS Tick-Tock Clock": "2:24.254",
	"3DS Piranha Plant Slide": "1:41.010",
	"Wii Grumble Volcano": "2:19.220",
	"N64 Rainbow Road": "1:48.249",
	"3DS Neo Bowser City": "2:13.025",
	"GBA Ribbon Road": "2:17.618",
	"Super Bell Subway": "2:04.010",
	"Big Blue": "2:20.554",
	"GCN Yoshi Circuit": "1:47.926",
	"Excitebike Arena": "2:03.815",
	"Dragon Driftway": "2:18.582",
	"Mute City": "2:31.148",
	"Wii Wario's Gold Mine": "1:46.960",
	"SNES Rainbow Road": "2:31.473",
	"Ice Ice Outpost": "2:32.852",
	"Hyrule Circuit": "2:08.838",
	"GCN Baby Park": "2:06.841",
	"GBA Cheese Land": "2:28.996",
	"Wild Woods": "2:14.516",
	"Animal Crossing": "1:50.270",
	"Tour Paris Promenade": "2:13.696",
	"3DS Toad Circuit": "1:46.716",
	"N64 Choco Mountain": "1:44.609",
	"Wii Coconut Mall": "1:54.849",
	"Tour Tokyo Blur": "2:18.256",
	"DS Shroom Ridge": "2:05.743",
	"GBA Sky Garden": "1:59.180",
	"Tour Ninja Hideaway": "2:22.551",
	"Tour New York Minute": "2:19.103",
	"SNES Mario Circuit 3": "2:21.672",
	"N64 Kalimari Desert": "2:27.342",
	"DS Waluigi Pinball": "2:18.001",
	"Tour Sydney Sprint": "1:50.568",
	"GBA Snow Land": "2:25.474",
	"Wii Mushroom Gorge": "1:54.079",
	"Sky-High Sundae": "1:50.076",
	"Tour London Loop": "1:58.535",
	"GBA Boo Lake": "1:36.314",
	"3DS Rock Rock Mountain": "1:59.730",
	"Wii Maple Treeway": "1:39.014",
	"Tour Berlin Byways": "2:22.152",
	"DS Peach Gardens": "1:55.052",
	"Tour Merry Mountain": "2:12.677",
	"3DS Rainbow Road": "1:54.766",
	"Tour Amsterdam Drift": "1:36.066",
	"GBA Riverside Park": "2:02.815",
	"Wii DK Summit": "2:05.735",
	"Yoshi's Island": "2:21.394",
	"Tour Bangkok Rush": "2:18.272",
	"DS Mario Circuit": "1:50.217",
	"GCN Waluigi Stadium": "2:35.003",
	"Tour Singapore Speedway": "2:05.484",
	"Tour Athens Dash": "2:29.682",
	"GCN Daisy Cruiser": "2:16.652",
	"Wii Moonview Highway": "1:47.383",
	"Squeaky Clean Sprint": "2:14.375",
	"Tour Los Angeles Laps": "2:03.541",
	"GBA Sunset Wilds": "2:24.233",
	"Wii Koopa Cape": "2:16.255",
	"Tour Vancouver Velocity": "1:41.404",
	"Tour Rome Avanti": "2:10.603",
	"GCN DK Mountain": "2:01.257",
	"Wii Daisy Circuit": "1:58.983",
	"Piranha Plant Cove": "1:55.012",
	"Tour Madrid Drive": "2:35.662",
	"3DS Rosalina's Ice World": "2:02.338",
	"SNES Bowser Castle 3": "2:03.762",
	"Wii Rainbow Road": "1:55.646",
}
