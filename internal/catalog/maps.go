package catalog

var mapOrder = []string{
	"Carentan",
	"Driel",
	"El Alamein",
	"Foy",
	"Hill 400",
	"Hurtgen Forest",
	"Kharkov",
	"Kursk",
	"Mortain",
	"Omaha Beach",
	"Purple Heart Lane",
	"Remagen",
	"Ste. Marie Du Mont",
	"Ste. Mere Eglise",
	"Stalingrad",
	"Utah Beach",
}

// Maps is the full map catalog: objective grids row by row, allowed
// environments, board orientation and the factions attached to each side.
var Maps = map[string]*MapDetails{
	"Carentan": {
		ID:           "Carentan",
		ShortName:    "Carentan",
		Environments: []Environment{EnvDay, EnvNight},
		Objectives: [5]ObjectiveRow{
			{"Blactot", "502nd Start", "Farm Ruins"},
			{"Pumping Station", "Ruins", "Derailed Train"},
			{"Canal Crossing", "Town Center", "Train Station"},
			{"Customs", "Rail Crossing", "Mount Halais"},
			{"Canal Locks", "Rail Causeway", "La Maison Des Ormes"},
		},
		Orientation: Horizontal,
		Allies:      FactionUS,
		Axis:        FactionGER,
		Tacmap:      "assets/tacmaps/carentan.png",
	},

	"Driel": {
		ID:           "Driel",
		ShortName:    "Driel",
		Environments: []Environment{EnvDawn, EnvNight},
		Objectives: [5]ObjectiveRow{
			{"Oosterbeek Approach", "Roseander Polder", "Kasteel Rosande"},
			{"Boatyard", "Bridgeway", "Rijn Banks"},
			{"Brick Factory", "Railway Bridge", "Gun Emplacements"},
			{"Rietveld", "South Railway", "Middel Road"},
			{"Orchards", "Schaduwwolken Farm", "Fields"},
		},
		Orientation: Vertical,
		Allies:      FactionCW,
		Axis:        FactionGER,
		Tacmap:      "assets/tacmaps/driel.png",
	},

	"El Alamein": {
		ID:           "El Alamein",
		ShortName:    "El Alamein",
		Environments: []Environment{EnvDay, EnvDusk},
		Objectives: [5]ObjectiveRow{
			{"Vehicle Depot", "Artillery Guns", "Miteiriya Ridge"},
			{"Hamlet Ruins", "El Mreir", "Watchtower"},
			{"Desert Rat Trenches", "Oasis", "Valley"},
			{"Fuel Depot", "Airfield Command", "Airfield Hangars"},
			{"Cliffside Village", "Ambushed Convoy", "Quarry"},
		},
		Orientation: Horizontal,
		Allies:      FactionCW,
		Axis:        FactionGER,
		Tacmap:      "assets/tacmaps/el_alamein.png",
	},

	"Foy": {
		ID:           "Foy",
		ShortName:    "Foy",
		Environments: []Environment{EnvDay, EnvNight},
		Objectives: [5]ObjectiveRow{
			{"Road To Recogne", "Cobru Approach", "Road To Noville"},
			{"Cobru Factory", "Foy", "Flak Battery"},
			{"West Bend", "Southern Edge", "Dugout Barn"},
			{"N30 Highway", "Bizory Foy Road", "Eastern Ourthe"},
			{"Road To Bastogne", "Bois Jacques", "Forest Outskirts"},
		},
		Orientation: Vertical,
		Allies:      FactionUS,
		Axis:        FactionGER,
		Tacmap:      "assets/tacmaps/foy.png",
	},

	"Hill 400": {
		ID:           "Hill 400",
		ShortName:    "Hill 400",
		Environments: []Environment{EnvDay},
		Objectives: [5]ObjectiveRow{
			{"Convoy Ambush", "Federchecke Junction", "Stuckchen Farm"},
			{"Roer River House", "Bergstein Church", "Kirchweg"},
			{"Flak Pits", "Hill 400", "Southern Approach"},
			{"Eselsweg Junction", "Eastern Slope", "Trainwreck"},
			{"Roer River Crossing", "Zerkall", "PaperMill"},
		},
		Orientation: Horizontal,
		Allies:      FactionUS,
		Axis:        FactionGER,
		Tacmap:      "assets/tacmaps/hill_400.png",
	},

	"Hurtgen Forest": {
		ID:           "Hurtgen Forest",
		ShortName:    "Hurtgen",
		Environments: []Environment{EnvDay, EnvNight},
		Objectives: [5]ObjectiveRow{
			{"The Masbauch Approach", "Reserve Station", "Lumber Yard"},
			{"Wehebach Overlook", "Kall Trail", "The Ruin"},
			{"North Pass", "The Scar", "The Siegfried Line"},
			{"Hill 15", "Jacob's Barn", "Salient 42"},
			{"Grosshau Approach", "Hürtgen Approach", "Logging Camp"},
		},
		Orientation: Horizontal,
		Allies:      FactionUS,
		Axis:        FactionGER,
		Tacmap:      "assets/tacmaps/hurtgen_forest.png",
	},

	"Kharkov": {
		ID:           "Kharkov",
		ShortName:    "Kharkov",
		Environments: []Environment{EnvDay, EnvNight},
		Objectives: [5]ObjectiveRow{
			{"Marsh Town", "Soviet Vantage Point", "German Fuel Dump"},
			{"Bitter Spring", "Lumber Works", "Windmill Hillside"},
			{"Water Mill", "St Mary", "Distillery"},
			{"River Crossing", "Belgorod Outskirts", "Lumberyard"},
			{"Wehrmacht Overlook", "Hay Storage", "Overpass"},
		},
		Orientation: Vertical,
		Allies:      FactionSOV,
		Axis:        FactionGER,
		Tacmap:      "assets/tacmaps/kharkov.png",
	},

	"Kursk": {
		ID:           "Kursk",
		ShortName:    "Kursk",
		Environments: []Environment{EnvDay, EnvNight},
		Objectives: [5]ObjectiveRow{
			{"Artillery Position", "Grushki", "Grushki Flank"},
			{"Panzer's End", "Defence In Depth", "Listening Post"},
			{"The Windmills", "Yamki", "Oleg's House"},
			{"Rudno", "Destroyed Battery", "The Muddy Churn"},
			{"Road To Kursk", "Ammo Dump", "Eastern Position"},
		},
		Orientation: Vertical,
		Allies:      FactionSOV,
		Axis:        FactionGER,
		Tacmap:      "assets/tacmaps/kursk.png",
	},

	"Mortain": {
		ID:           "Mortain",
		ShortName:    "Mortain",
		Environments: []Environment{EnvDay, EnvOvercast, EnvDawn},
		Objectives: [5]ObjectiveRow{
			{"Hotel De La Poste", "Forward Battery", "Southern Approach"},
			{"Mortain Outskirts", "Forward Medical Aid Station", "Mortain Approach"},
			{"Hill 314", "Petit Chappelle Saint Michel", "U.S. Southern Roadblock"},
			{"Destroyed German Convoy", "German Recon Camp", "Le Hermitage Farm"},
			{"Abandoned German Checkpoint", "German Defensive Camp", "Farm Of Bonovisin"},
		},
		Orientation: Horizontal,
		Allies:      FactionUS,
		Axis:        FactionGER,
		Tacmap:      "assets/tacmaps/mortain.png",
	},

	"Omaha Beach": {
		ID:           "Omaha Beach",
		ShortName:    "Omaha Beach",
		Environments: []Environment{EnvDay, EnvDusk},
		Objectives: [5]ObjectiveRow{
			{"Beaumont Road", "Crossroads", "Les Isles"},
			{"Rear Battery", "Church Road", "The Orchards"},
			{"West Vierville", "Vierville Sur Mer", "Artillery Battery"},
			{"WN73", "WN71", "WN70"},
			{"Dog Green", "The Draw", "Dog White"},
		},
		Orientation: Horizontal,
		Allies:      FactionUS,
		Axis:        FactionGER,
		Tacmap:      "assets/tacmaps/omaha_beach.png",
	},

	"Purple Heart Lane": {
		ID:           "Purple Heart Lane",
		ShortName:    "PHL",
		Environments: []Environment{EnvOvercast, EnvNight},
		Objectives: [5]ObjectiveRow{
			{"Bloody Bend", "Dead Man's Corner", "Forward Battery"},
			{"Jourdan Canal", "Douve Bridge", "Douve River Battery"},
			{"Groult Pillbox", "Carentan Causeway", "Flak Position"},
			{"Madeleine Farm", "Madeleine Bridge", "Aid Station"},
			{"Ingouf Crossroads", "Road To Carentan", "Cabbage Patch"},
		},
		Orientation: Vertical,
		Allies:      FactionUS,
		Axis:        FactionGER,
		Tacmap:      "assets/tacmaps/purple_heart_lane.png",
	},

	"Remagen": {
		ID:           "Remagen",
		ShortName:    "Remagen",
		Environments: []Environment{EnvDay, EnvNight},
		Objectives: [5]ObjectiveRow{
			{"Alte Liebe Barsch", "Bewaldet Kreuzung", "Dan Radart 512"},
			{"Erpel", "Erpeler Ley", "Kasbach Outlook"},
			{"St Severin Chapel", "Ludendorff Bridge", "Bauernhof Am Rhein"},
			{"Remagen", "Mobelfabrik", "SchlieffenAusweg"},
			{"Waldburg", "Muhlenweg", "Hagelkreuz"},
		},
		Orientation: Vertical,
		Allies:      FactionUS,
		Axis:        FactionGER,
		Tacmap:      "assets/tacmaps/remagen.png",
	},

	"Ste. Marie Du Mont": {
		ID:           "Ste. Marie Du Mont",
		ShortName:    "SMDM",
		Environments: []Environment{EnvDay, EnvNight},
		Objectives: [5]ObjectiveRow{
			{"Winters Landing", "Le Grand Chemin", "The Barn"},
			{"Brecourt Battery", "Cattlesheds", "Rue De La Gare"},
			{"The Dugout", "AA Network", "Pierre's Farm"},
			{"Hugo's Farm", "The Hamlet", "Ste Marie Du Mont"},
			{"The Corner", "Hill 6", "The Fields"},
		},
		Orientation: Vertical,
		Allies:      FactionUS,
		Axis:        FactionGER,
		Tacmap:      "assets/tacmaps/ste_marie_du_mont.png",
	},

	"Ste. Mere Eglise": {
		ID:           "Ste. Mere Eglise",
		ShortName:    "SME",
		Environments: []Environment{EnvDay, EnvNight},
		Objectives: [5]ObjectiveRow{
			{"Flak Position", "Vaulaville", "La Prairie"},
			{"Route Du Haras", "Western Approach", "Rue De Gambosville"},
			{"Hospice", "Ste Mere Eglise", "Checkpoint"},
			{"Artillery Battery", "The Cemetery", "Maison Du Crique"},
			{"Les Vieux Vergers", "Cross Roads", "Russeau De Ferme"},
		},
		Orientation: Horizontal,
		Allies:      FactionUS,
		Axis:        FactionGER,
		Tacmap:      "assets/tacmaps/ste_mere_eglise.png",
	},

	"Stalingrad": {
		ID:           "Stalingrad",
		ShortName:    "Stalingrad",
		Environments: []Environment{EnvDay, EnvNight},
		Objectives: [5]ObjectiveRow{
			{"Mamayev Approach", "Nail Factory", "City Overlook"},
			{"Dolgiy Ravine", "Yellow House", "Komsomol HQ"},
			{"Railway Crossing", "Carriage Depot", "Train Station"},
			{"House Of The Workers", "Pavlov's House", "The Brewery"},
			{"L Shaped House", "Grudinin's Mill", "Volga Banks"},
		},
		Orientation: Horizontal,
		Allies:      FactionSOV,
		Axis:        FactionGER,
		Tacmap:      "assets/tacmaps/stalingrad.png",
	},

	"Utah Beach": {
		ID:           "Utah Beach",
		ShortName:    "Utah Beach",
		Environments: []Environment{EnvDay, EnvNight},
		Objectives: [5]ObjectiveRow{
			{"Mammut Radar", "Flooded House", "Sainte Marie Approach"},
			{"Sunken Bridge", "La Grande Crique", "Drowned Fields"},
			{"WN4", "The Chapel", "WN7"},
			{"AABattery", "Hill 5", "WN5"},
			{"Tare Green", "Red Roof House", "Uncle Red"},
		},
		Orientation: Horizontal,
		Allies:      FactionUS,
		Axis:        FactionGER,
		Tacmap:      "assets/tacmaps/utah_beach.png",
	},
}
