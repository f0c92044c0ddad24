package schema

// builtinFieldsByType lists the legal fields of AIVDM message types 1-27.
var builtinFieldsByType = FieldsByType{
	1: {
		"accuracy", "course", "heading", "lat", "lon", "maneuver", "mmsi", "spare", "radio",
		"raim", "repeat", "second", "speed", "status", "turn", "type", "timestamp",
	},
	2: {
		"accuracy", "course", "heading", "lat", "lon", "maneuver", "mmsi", "spare", "radio",
		"raim", "repeat", "second", "speed", "status", "turn", "type", "timestamp",
	},
	3: {
		"accuracy", "course", "heading", "lat", "lon", "maneuver", "mmsi", "spare", "radio",
		"raim", "repeat", "second", "speed", "status", "turn", "type", "timestamp",
	},
	4: {
		"accuracy", "day", "epfd", "hour", "lat", "lon", "minute", "mmsi", "month", "radio",
		"raim", "repeat", "second", "type", "year", "spare", "timestamp",
	},
	5: {
		"ais_version", "callsign", "day", "destination", "draught", "dte", "epfd", "hour",
		"imo", "minute", "mmsi", "month", "repeat", "shipname", "shiptype", "to_bow",
		"to_port", "to_starboard", "to_stern", "type", "spare", "timestamp",
	},
	6: {
		"type", "repeat", "mmsi", "seqno", "dest_mmsi", "retransmit", "spare", "dac", "fid",
		"data", "timestamp",
	},
	7: {
		"day", "destination", "draught", "dte", "epfd", "hour", "minute", "mmsi", "mmsi1",
		"mmsi2", "mmsi3", "mmsi4", "mmsiseq1", "mmsiseq2", "mmsiseq3", "mmsiseq4", "month",
		"repeat", "type", "timestamp",
	},
	8: {
		"assigned", "course", "dac", "data", "destination", "draught", "dte", "fid", "lat",
		"minute", "mmsi", "radio", "raim", "regional", "repeat", "second", "type",
		"timestamp",
	},
	9: {
		"accuracy", "alt", "assigned", "course", "destination", "draught", "dte", "lat",
		"lon", "minute", "mmsi", "radio", "raim", "regional", "repeat", "second", "speed9",
		"type", "timestamp",
	},
	10: {
		"assigned", "course", "dest_mmsi", "destination", "draught", "dte", "lat", "lon",
		"minute", "mmsi", "radio", "raim", "regional", "repeat", "second", "type",
		"timestamp",
	},
	11: {
		"accuracy", "day", "epfd", "hour", "lat", "lon", "minute", "mmsi", "month", "radio",
		"raim", "repeat", "second", "type", "year", "timestamp",
	},
	12: {
		"assigned", "course", "dest_mmsi", "destination", "draught", "dte", "minute", "mmsi",
		"radio", "raim", "regional", "repeat", "retransmit", "second", "seqno", "text",
		"type", "timestamp",
	},
	13: {
		"day", "destination", "draught", "dte", "epfd", "hour", "minute", "mmsi", "mmsi1",
		"mmsi2", "mmsi3", "mmsi4", "mmsiseq1", "mmsiseq2", "mmsiseq3", "mmsiseq4", "month",
		"repeat", "type", "timestamp",
	},
	14: {
		"assigned", "course", "destination", "draught", "dte", "minute", "mmsi", "radio",
		"raim", "regional", "repeat", "retransmit", "second", "text", "type", "timestamp",
	},
	15: {
		"destination", "draught", "dte", "minute", "mmsi", "mmsi1", "mmsi2", "offset1_1",
		"offset1_2", "offset2_1", "radio", "repeat", "type", "type1_1", "type1_2", "type2_1",
		"timestamp",
	},
	16: {
		"destination", "draught", "dte", "increment1", "minute", "mmsi", "mmsi1", "mmsi2",
		"offset1", "offset2", "offset2_1", "radio", "repeat", "type", "type2_1", "timestamp",
	},
	17: {
		"data", "lat", "lon", "mmsi", "repeat", "type", "timestamp",
	},
	18: {
		"accuracy", "assigned", "band", "course", "cs", "display", "dsc", "heading", "lat",
		"lon", "mmsi", "msg22", "radio", "raim", "regional", "repeat", "reserved", "second",
		"speed", "type", "timestamp",
	},
	19: {
		"accuracy", "assigned", "course", "dte", "epfd", "heading", "lat", "lon", "mmsi",
		"raim", "regional", "repeat", "reserved", "second", "shipname", "shiptype", "speed",
		"to_bow", "to_port", "to_starboard", "to_stern", "type", "timestamp",
	},
	20: {
		"assigned", "dte", "increment1", "increment2", "increment3", "increment4", "mmsi",
		"number1", "number2", "number3", "number4", "offset1", "offset2", "offset3",
		"offset4", "repeat", "timeout1", "timeout2", "timeout3", "timeout4", "type",
		"timestamp",
	},
	21: {
		"accuracy", "aid_type", "assigned", "epfd", "lat", "lon", "mmsi", "name",
		"off_position", "raim", "regional", "repeat", "second", "to_bow", "to_port",
		"to_starboard", "to_stern", "type", "virtual_aid", "timestamp",
	},
	22: {
		"addressed", "assigned", "band_a", "band_b", "channel_a", "channel_b", "dest1",
		"dest2", "mmsi", "ne_lat", "ne_lon", "power", "repeat", "sw_lat", "sw_lon", "txrx",
		"type", "zonesize", "timestamp",
	},
	23: {
		"assigned", "band_a", "band_b", "interval", "mmsi", "ne_lat", "ne_lon", "quiet",
		"repeat", "ship_type", "station_type", "sw_lat", "sw_lon", "txrx", "type",
		"zonesize", "timestamp",
	},
	24: {
		"assigned", "callsign", "mmsi", "model", "mothership_mmsi", "partno", "repeat",
		"serial", "shipname", "shiptype", "to_bow", "to_port", "to_starboard", "to_stern",
		"type", "vendorid", "zonesize", "timestamp",
	},
	25: {
		"addressed", "app_id", "assigned", "callsign", "data", "dest_mmsi", "mmsi", "model",
		"mothership_mmsi", "repeat", "serial", "structured", "to_bow", "to_port",
		"to_starboard", "to_stern", "type", "zonesize", "timestamp",
	},
	26: {
		"addressed", "app_id", "assigned", "callsign", "data", "dest_mmsi", "mmsi",
		"mothership_mmsi", "radio", "repeat", "serial", "structured", "to_bow", "to_port",
		"to_starboard", "to_stern", "type", "zonesize", "timestamp",
	},
	27: {
		"accuracy", "assigned", "course", "gnss", "lat", "lon", "mmsi", "mothership_mmsi",
		"raim", "repeat", "speed", "status", "to_port", "to_starboard", "to_stern", "type",
		"zonesize", "timestamp",
	},
}

// builtinTypeDescriptions names AIVDM message types 1-27.
var builtinTypeDescriptions = TypeDescriptions{
	1: "Position Report Class A",
	2: "Position Report Class A",
	3: "Position Report Class A",
	4: "Base Station Report",
	5: "Static and Voyage Related Data",
	6: "Binary Addressed Message",
	7: "Binary Acknowledge",
	8: "Binary Broadcast Message",
	9: "Standard SAR Aircraft Position Report",
	10: "UTC/Date Inquiry",
	11: "UTC/Date Response",
	12: "Addressed Safety-Related Message",
	13: "Safety-Related Acknowledgement",
	14: "Safety-Related Broadcast Message",
	15: "Interrogation",
	16: "Assignment Mode Command",
	17: "DGNSS Broadcast Binary Message",
	18: "Standard Class B CS Position Report",
	19: "Extended Class B CS Position Report",
	20: "Data Link Management Message",
	21: "Aid-to-Navigation Report",
	22: "Channel Management",
	23: "Group Assignment Command",
	24: "Static Data Report",
	25: "Single Slot Binary Message",
	26: "Multiple Slot Binary Message",
	27: "Long Range AIS Broadcast message",
}
