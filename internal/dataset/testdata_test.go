package dataset

const volcanoCSV = `Volcano Number,Volcano Name,Country,Primary Volcano Type,Activity Evidence,Last Known Eruption,Region,Subregion,Latitude,Longitude,Elevation (m),Dominant Rock Type,Tectonic Setting
211060,Etna,Italy,Stratovolcano(es),Eruption Observed,2022 CE,Mediterranean and Western Asia,Italy,37.748,14.999,3295,Trachybasalt / Tephrite Basanite,Subduction zone / Continental crust (>25 km)
211020,Vesuvius,Italy,Stratovolcano,Eruption Dated,1944 CE,Mediterranean and Western Asia,Italy,40.821,14.426,1281,Phono-tephrite / Tephri-phonolite,Subduction zone / Continental crust (>25 km)
283040,Fuji,Japan,Stratovolcano,Uncertain Evidence,1707 CE,Japan,Honshu,35.3606,138.7274,3776,,Subduction zone / Continental crust (>25 km)
`

const cityCSV = `"city","city_ascii","lat","lng","country","iso2","iso3","admin_name","capital","population","id"
"Tokyo","Tokyo","35.6897","139.6922","Japan","JP","JPN","Tōkyō","primary","37732000","1392685764"
"Naples","Naples","40.8333","14.25","Italy","IT","ITA","Campania","admin","966144","1380646673"
"Catania","Catania","37.5","15.0833","Italy","IT","ITA","Sicilia","minor","","1380562508"
`
