package gamedata

// WorldRecordsShrooms maps engine class to per-track world records for the
// standard 3-shroom ruleset. Maintained by hand from community leaderboards.
var WorldRecordsShrooms = map[string]map[string]string{
	"150cc": {
		"Mario Kart Stadium": "1:58.598",
		"Water Park": "1:38.618",
		"Sweet Sweet Canyon": "1:46.468",
		"Thwomp Ruins": "1:56.322",
		"Mario Circuit": "2:17.418",
		"Toad Harbor": "1:53.942",
		"Twisted Mansion": "2:18.936",
		"Shy Guy Falls": "1:33.473",
		"Sunshine Airport": "2:18.064",
		"Dolphin Shoals": "2:16.561",
		"Electrodrome": "1:38.257",
		"Mount Wario": "2:08.855",
		"Cloudtop Cruise": "2:13.754",
		"Bone-Dry Dunes": "1:57.378",
		"Bowser's Castle": "2:31.198",
		"Rainbow Road": "2:14.084",
		"Wii Moo Moo Meadows": "2:29.697",
		"GBA Mario Circuit": "2:11.939",
		"DS Cheep Cheep Beach": "2:13.575",
		"N64 Toad's Turnpike": "2:09.740",
		"GCN Dry Dry Desert": "2:31.029",
		"SNES Donut Plains 3": "1:35.328",
		"N64 Royal Raceway": "2:06.037",
		"3DS DK Jungle": "1:43.304",
		"DS Wario Stadium": "2:08.984",
		"GCN Sherbet Land": "2:26.420",
		"3DS Music Park": "1:46.234",
		"N64 Yoshi Valley": "2:24.030",
		"DS Tick-Tock Clock": "2:21.642",
		"3DS Piranha Plant Slide": "1:38.342",
		"Wii Grumble Volcano": "2:15.914",
		"N64 Rainbow Road": "1:45.184",
		"3DS Neo Bowser City": "2:11.460",
		"GBA Ribbon Road": "2:14.120",
		"Super Bell Subway": "2:01.949",
		"Big Blue": "2:18.540",
		"GCN Yoshi Circuit": "1:43.997",
		"Excitebike Arena": "2:01.066",
		"Dragon Driftway": "2:15.262",
		"Mute City": "2:27.597",
		"Wii Wario's Gold Mine": "1:44.392",
		"SNES Rainbow Road": "2:28.693",
		"Ice Ice Outpost": "2:29.874",
		"Hyrule Circuit": "2:06.976",
		"GCN Baby Park": "2:04.116",
		"GBA Cheese Land": "2:27.449",
		"Wild Woods": "2:12.197",
		"Animal Crossing": "1:47.257",
		"Tour Paris Promenade": "2:09.935",
		"3DS Toad Circuit": "1:43.423",
		"N64 Choco Mountain": "1:43.158",
		"Wii Coconut Mall": "1:51.663",
		"Tour Tokyo Blur": "2:16.436",
		"DS Shroom Ridge": "2:04.132",
		"GBA Sky Garden": "1:55.374",
		"Tour Ninja Hideaway": "2:19.153",
		"Tour New York Minute": "2:15.063",
		"SNES Mario Circuit 3": "2:17.599",
		"N64 Kalimari Desert": "2:25.255",
		"DS Waluigi Pinball": "2:16.348",
		"Tour Sydney Sprint": "1:47.794",
		"GBA Snow Land": "2:23.040",
		"Wii Mushroom Gorge": "1:52.052",
		"Sky-High Sundae": "1:48.306",
		"Tour London Loop": "1:54.462",
		"GBA Boo Lake": "1:34.160",
		"3DS Rock Rock Mountain": "1:56.355",
		"Wii Maple Treeway": "1:36.849",
		"Tour Berlin Byways": "2:19.816",
		"DS Peach Gardens": "1:53.339",
		"Tour Merry Mountain": "2:09.334",
		"3DS Rainbow Road": "1:52.613",
		"Tour Amsterdam Drift": "1:33.599",
		"GBA Riverside Park": "2:00.578",
		"Wii DK Summit": "2:02.767",
		"Yoshi's Island": "2:17.313",
		"Tour Bangkok Rush": "2:15.345",
		"DS Mario Circuit": "1:48.315",
		"GCN Waluigi Stadium": "2:31.907",
		"Tour Singapore Speedway": "2:03.908",
		"Tour Athens Dash": "2:26.075",
		"GCN Daisy Cruiser": "2:12.936",
		"Wii Moonview Highway": "1:44.930",
		"Squeaky Clean Sprint": "2:10.474",
		"Tour Los Angeles Laps": "2:00.211",
		"GBA Sunset Wilds": "2:20.925",
		"Wii Koopa Cape": "2:12.914",
		"Tour Vancouver Velocity": "1:38.995",
		"Tour Rome Avanti": "2:07.367",
		"GCN DK Mountain": "1:58.110",
		"Wii Daisy Circuit": "1:55.918",
		"Piranha Plant Cove": "1:50.908",
		"Tour Madrid Drive": "2:31.975",
		"3DS Rosalina's Ice World": "2:00.083",
		"SNES Bowser Castle 3": "2:00.999",
		"Wii Rainbow Road": "1:52.160",
	},
	"200cc": {
		"Mario Kart Stadium": "1:27.852",
		"Water Park": "1:13.073",
		"Sweet Sweet Canyon": "1:18.933",
		"Thwomp Ruins": "1:27.091",
		"Mario Circuit": "1:42.040",
		"Toad Harbor": "1:25.735",
		"Twisted Mansion": "1:44.145",
		"Shy Guy Falls": "1:08.705",
		"Sunshine Airport": "1:42.723",
		"Dolphin Shoals": "1:41.415",
		"Electrodrome": "1:12.434",
		"Mount Wario": "1:36.751",
		"Cloudtop Cruise": "1:40.703",
		"Bone-Dry Dunes": "1:28.251",
		"Bowser's Castle": "1:53.182",
		"Rainbow Road": "1:41.844",
		"Wii Moo Moo Meadows": "1:51.843",
		"GBA Mario Circuit": "1:39.178",
		"DS Cheep Cheep Beach": "1:40.684",
		"N64 Toad's Turnpike": "1:38.376",
		"GCN Dry Dry Desert": "1:52.646",
		"SNES Donut Plains 3": "1:10.899",
		"N64 Royal Raceway": "1:34.509",
		"3DS DK Jungle": "1:16.224",
		"DS Wario Stadium": "1:37.326",
		"GCN Sherbet Land": "1:50.910",
		"3DS Music Park": "1:19.088",
		"N64 Yoshi Valley": "1:49.047",
		"DS Tick-Tock Clock": "1:46.420",
		"3DS Piranha Plant Slide": "1:14.618",
		"Wii Grumble Volcano": "1:41.250",
		"N64 Rainbow Road": "1:18.781",
		"3DS Neo Bowser City": "1:38.456",
		"GBA Ribbon Road": "1:41.298",
		"Super Bell Subway": "1:32.669",
		"Big Blue": "1:45.217",
		"GCN Yoshi Circuit": "1:16.872",
		"Excitebike Arena": "1:30.350",
		"Dragon Driftway": "1:40.390",
		"Mute City": "1:50.792",
		"Wii Wario's Gold Mine": "1:18.263",
		"SNES Rainbow Road": "1:52.909",
		"Ice Ice Outpost": "1:52.456",
		"Hyrule Circuit": "1:34.928",
		"GCN Baby Park": "1:33.809",
		"GBA Cheese Land": "1:50.788",
		"Wild Woods": "1:38.921",
		"Animal Crossing": "1:19.366",
		"Tour Paris Promenade": "1:38.409",
		"3DS Toad Circuit": "1:17.340",
		"N64 Choco Mountain": "1:15.982",
		"Wii Coconut Mall": "1:24.735",
		"Tour Tokyo Blur": "1:41.451",
		"DS Shroom Ridge": "1:32.470",
		"GBA Sky Garden": "1:25.403",
		"Tour Ninja Hideaway": "1:44.837",
		"Tour New York Minute": "1:41.196",
		"SNES Mario Circuit 3": "1:43.765",
		"N64 Kalimari Desert": "1:48.358",
		"DS Waluigi Pinball": "1:42.382",
		"Tour Sydney Sprint": "1:21.041",
		"GBA Snow Land": "1:48.579",
		"Wii Mushroom Gorge": "1:25.045",
		"Sky-High Sundae": "1:21.241",
		"Tour London Loop": "1:26.232",
		"GBA Boo Lake": "1:09.719",
		"3DS Rock Rock Mountain": "1:27.135",
		"Wii Maple Treeway": "1:11.548",
		"Tour Berlin Byways": "1:44.288",
		"DS Peach Gardens": "1:24.687",
		"Tour Merry Mountain": "1:37.115",
		"3DS Rainbow Road": "1:23.678",
		"Tour Amsterdam Drift": "1:10.384",
		"GBA Riverside Park": "1:29.271",
		"Wii DK Summit": "1:31.522",
		"Yoshi's Island": "1:42.641",
		"Tour Bangkok Rush": "1:40.608",
		"DS Mario Circuit": "1:22.173",
		"GCN Waluigi Stadium": "1:53.231",
		"Tour Singapore Speedway": "1:33.553",
		"Tour Athens Dash": "1:50.703",
		"GCN Daisy Cruiser": "1:39.781",
		"Wii Moonview Highway": "1:18.315",
		"Squeaky Clean Sprint": "1:38.699",
		"Tour Los Angeles Laps": "1:31.142",
		"GBA Sunset Wilds": "1:44.872",
		"Wii Koopa Cape": "1:40.662",
		"Tour Vancouver Velocity": "1:15.145",
		"Tour Rome Avanti": "1:36.658",
		"GCN DK Mountain": "1:28.473",
		"Wii Daisy Circuit": "1:27.898",
		"Piranha Plant Cove": "1:24.267",
		"Tour Madrid Drive": "1:55.420",
		"3DS Rosalina's Ice World": "1:30.941",
		"SNES Bowser Castle 3": "1:29.824",
		"Wii Rainbow Road": "1:24.826",
	},
}
