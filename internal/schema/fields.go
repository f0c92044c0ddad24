package schema

// na marks fields without physical units.
const na = "N/A"

// field builds a definition carrying a default value.
func field(validate Validator, units string, dflt any, description string) FieldDefinition {
	return FieldDefinition{
		Validate:    validate,
		Units:       units,
		Default:     dflt,
		HasDefault:  true,
		Description: description,
	}
}

const (
	descToBow = "Distance from the AIS transponder to the bow of the vessel in meters. " +
		"The special value 511 indicates 511 meters or greater."
	descToStern = "Distance from the AIS transponder to the stern of the vessel in meters. " +
		"The special value 511 indicates 511 meters or greater."
	descToPort = "Distance from the AIS transponder to the port side of the vessel in meters. " +
		"The special value 63 indicates 63 meters or greater."
	descToStarboard = "Distance from the AIS transponder to the starboard side of the vessel " +
		"in meters. The special value 63 indicates 63 meters or greater."
	descChannel = "ITU frequency designator for the channel. Normally 2087 and 2088 for " +
		"channels A and B, the AIS 1 and AIS 2 frequencies of 87B (161.975 MHz) and " +
		"88B (162.025 MHz). Regional authorities may set different frequencies."
	descTxRx = "Encodes the same information as the 2-bit txrx field in message type 23; " +
		"only the two low bits are used. Tells the affected stations which of the " +
		"type 22 A and B channels they may transmit on."
	descNumber    = "Number of consecutive reserved slots."
	descTimeout   = "Allocation timeout in minutes."
	descOffset    = "Reserved slot offset."
	descIncrement = "Slot allocation increment."
	descMMSISeq   = "Not used."
)

// builtinFields is the AIVDM field table.
var builtinFields = Fields{
	"type": {
		Validate: Int(),
		Units:    na,
		Description: "Message type, which dictates the message schema. Normally 1-27 " +
			"(28-63 reserved) but any integer is accepted so users can define their own " +
			"message types. It is advisable to stay out of the active and reserved ranges.",
	},
	"repeat": field(IntRange(0, 3), na, int64(0),
		"A directive to an AIS transceiver that this message should be rebroadcast, "+
			"incremented on each retransmission to a maximum of 3 hops. "+
			"A value of 3 indicates 'Do not repeat'."),
	"mmsi": field(Nullable(Int()), na, nil,
		"Maritime Mobile Service Identity. AIVDM requires 9 digits, but only the type "+
			"is enforced to support non-AIS sources and analysis of invalid values."),
	"status": field(IntRange(0, 15), na, int64(15), "Navigation status."),
	"turn":   field(Float(), "Degrees / minute", int64(128), "Rate of turn."),
	"speed": field(Any(FloatRange(0, 102, true), In(1022.0, 1023.0)), "knots", 1023.0,
		"Speed over ground in 0.1-knot resolution from 0 to 102 knots. Value 1023 "+
			"indicates speed is not available, value 1022 indicates 102.2 knots or higher."),
	"accuracy": field(IntIn(0, 1), "", int64(0),
		"Position accuracy flag. 1 indicates a DGPS-quality fix with an accuracy of "+
			"< 10m. 0, the default, indicates an unaugmented GNSS fix with accuracy > 10m."),
	"lon": field(Float(), "WGS84 degrees", 181.0,
		"East/West coordinate in WGS84 degrees. Special value 181 indicates not "+
			"available. Out of bounds values are accepted."),
	"lat": field(Float(), "WGS84 degrees", 91.0,
		"North/South coordinate in WGS84 degrees. Special value 91 indicates not "+
			"available. Out of bounds values are accepted."),
	"course": field(Any(FloatRange(0, 360, false), In(3600.0)), "degrees", 3600.0,
		"Course over ground in degrees from true north to 0.1 degree precision."),
	"heading": field(Any(IntRange(0, 359), IntIn(511)), "degrees", int64(511),
		"True heading in degrees from north."),
	"second":   field(IntRange(0, 60), na, int64(60), "UTC second."),
	"maneuver": field(IntIn(0, 1, 2), na, int64(0), "Indicates whether a special maneuver is in progress."),
	"raim": field(IntIn(0, 1), na, int64(0),
		"Whether Receiver Autonomous Integrity Monitoring is being used to check the "+
			"performance of the EPFD."),
	"regional":    field(Int(), na, int64(0), "Intended for use by local maritime authorities."),
	"radio":       field(Int(), na, int64(0), "Diagnostic information for the radio system."),
	"year":        field(IntRange(0, 9999), na, int64(0), "UTC year."),
	"month":       field(IntRange(0, 12), na, int64(0), "UTC month."),
	"day":         field(IntRange(0, 31), na, int64(0), "UTC day."),
	"hour":        field(IntRange(0, 23), na, int64(0), "UTC hour."),
	"minute":      field(IntRange(0, 60), na, int64(60), "UTC minute."),
	"epfd":        field(IntRange(0, 15), na, int64(0), "Type of electronic position fixing device."),
	"ais_version": field(IntIn(0, 1, 2, 3), na, int64(0), "Version of AIS broadcast. Currently only ITU1371."),
	"imo":         field(Nullable(Int()), na, nil, "IMO ship ID number."),
	"callsign":    field(Nullable(String()), na, nil, "Vessel callsign."),
	"shiptype":    field(IntRange(0, 99), na, int64(0), "Vessel type. Value maps to a description."),
	"to_bow":       field(IntMin(0), "meters", int64(0), descToBow),
	"to_stern":     field(IntMin(0), "meters", int64(0), descToStern),
	"to_port":      field(IntMin(0), "meters", int64(0), descToPort),
	"to_starboard": field(IntMin(0), "meters", int64(0), descToStarboard),
	"draught":      field(FloatMin(0), "decimeters", 0.0, "Vessel draught."),
	"dte":          field(IntIn(0, 1), na, int64(1), "Data terminal ready. 0 means available."),
	"seqno":        field(IntIn(0, 1, 2, 3), na, int64(0), "Sequence number of an addressed message."),
	"dest_mmsi":    field(Nullable(Int()), na, nil, "Message is asking for a response from this MMSI."),
	"retransmit":   field(IntIn(0, 1), na, int64(0), "If 1, the message was re-broadcast by an intermediary station."),
	"dac":          field(IntMin(0), na, int64(0), "Designated Area Code / jurisdiction code."),
	"fid":          field(IntMin(0), na, int64(0), "Functional ID. Sometimes abbreviated as FI."),
	"data":         field(Nullable(String()), na, nil, "Binary payload."),
	"mmsi1":        field(Nullable(Int()), na, nil, "First acknowledged or interrogated MMSI."),
	"mmsiseq1":     field(Nullable(Int()), na, nil, descMMSISeq),
	"mmsi2":        field(Nullable(Int()), na, nil, "Interrogated MMSI."),
	"mmsiseq2":     field(Nullable(Int()), na, nil, descMMSISeq),
	"mmsi3":        field(Nullable(Int()), na, nil, "Interrogated MMSI."),
	"mmsiseq3":     field(Nullable(Int()), na, nil, descMMSISeq),
	"mmsi4":        field(Nullable(Int()), na, nil, "Interrogated MMSI."),
	"mmsiseq4":     field(Nullable(Int()), na, nil, descMMSISeq),
	"alt": field(IntRange(0, 4095), "meters", int64(4095),
		"SAR vehicle altitude. Special value 4095 indicates altitude not available."),
	"speed9": {
		Validate:      IntRange(0, 1023),
		Units:         "knots",
		Default:       int64(1023),
		HasDefault:    true,
		CanonicalName: "speed",
		Description: "Speed broadcast by search-and-rescue aircraft. Special value 1023 " +
			"indicates speed not available.",
	},
	"assigned":       field(IntIn(0, 1), na, int64(0), "Assigned-mode flag. 0=autonomous and 1=assigned."),
	"text":           field(Nullable(String()), na, nil, "Plain text info specific to broadcast message type."),
	"type1_1":        field(IntRange(0, 27), na, int64(0), "First message type."),
	"offset1_1":      field(IntMin(0), na, int64(0), "First slot offset."),
	"offset1_2":      field(IntMin(0), na, int64(0), "Second slot offset."),
	"offset2_1":      field(IntMin(0), na, int64(0), "Slot offset for the second station."),
	"type1_2":        field(IntRange(0, 27), na, int64(0), "Second message type."),
	"type2_1":        field(IntRange(0, 27), na, int64(0), "Message type requested from the second station."),
	"offset1":        field(IntMin(0), na, int64(0), descOffset),
	"offset2":        field(IntMin(0), na, int64(0), descOffset),
	"offset3":        field(IntMin(0), na, int64(0), descOffset),
	"offset4":        field(IntMin(0), na, int64(0), descOffset),
	"increment1":     field(IntMin(0), na, int64(0), descIncrement),
	"increment2":     field(IntMin(0), na, int64(0), descIncrement),
	"increment3":     field(IntMin(0), na, int64(0), descIncrement),
	"increment4":     field(IntMin(0), na, int64(0), descIncrement),
	"spare":          field(IntMin(0), na, int64(0), "Spare bits."),
	"cs":             field(IntIn(0, 1), na, int64(0), "Carrier sense unit."),
	"display":        field(IntIn(0, 1), na, int64(0), "0=Does not have visual display. 1=Has visual display."),
	"dsc":            field(IntIn(0, 1), na, int64(1), "If 1, unit is attached to a VHF voice radio with DSC capability."),
	"band":           field(IntIn(0, 1), na, int64(0), "If 1, the unit can use any part of the marine channel."),
	"msg22":          field(IntIn(0, 1), na, int64(0), "If 1, unit can accept a channel assignment via Message Type 22."),
	"number1":        field(IntMin(0), na, int64(0), descNumber),
	"number2":        field(IntMin(0), na, int64(0), descNumber),
	"number3":        field(IntMin(0), na, int64(0), descNumber),
	"number4":        field(IntMin(0), na, int64(0), descNumber),
	"timeout1":       field(IntRange(0, 59), "minutes", int64(0), descTimeout),
	"timeout2":       field(IntRange(0, 59), "minutes", int64(0), descTimeout),
	"timeout3":       field(IntRange(0, 59), "minutes", int64(0), descTimeout),
	"timeout4":       field(IntRange(0, 59), "minutes", int64(0), descTimeout),
	"aid_type":       field(IntRange(0, 31), na, int64(0), "Navigation aid type."),
	"name_extension": field(Nullable(String()), na, nil, "Continuation of an aid to navigation name."),
	"txrx":           field(IntIn(0, 1, 2, 3), na, int64(0), descTxRx),
	"power":          field(IntIn(0, 1), na, int64(0), "Low=0, high=1."),
	"ne_lon":         field(Float(), "WGS84 degrees", int64(0x1a838), "Longitude of the north-east corner of the area."),
	"ne_lat":         field(Float(), "WGS84 degrees", int64(0xd548), "Latitude of the north-east corner of the area."),
	"sw_lon":         field(Float(), "WGS84 degrees", int64(0x1a838), "Longitude of the south-west corner of the area."),
	"sw_lat":         field(Float(), "WGS84 degrees", int64(0x1a838), "Latitude of the south-west corner of the area."),
	"dest1":          field(Int(), na, int64(0), "MMSI of destination 1."),
	"dest2":          field(Int(), na, int64(0), "MMSI of destination 2."),
	"band_a":         field(IntIn(0, 1), na, int64(0), "Default=0, 1=12.5kHz."),
	"band_b":         field(IntIn(0, 1), na, int64(0), "Default=0, 1=12.5kHz."),
	"zonesize":       field(IntMin(0), na, int64(0), "Size of transitional zone."),
	"station_type":   field(IntRange(0, 15), na, int64(0), "Type of station addressed by a group assignment."),
	"ship_type":      field(IntMin(0), na, int64(0), "Ship type addressed by a group assignment."),
	"interval":       field(IntRange(0, 15), na, int64(0), "Reporting interval."),
	"quiet":          field(IntRange(0, 15), "minutes", int64(0), "Quiet time in minutes. None=0."),
	"partno": field(IntIn(0, 1), na, int64(0),
		"0 means the rest of the message is a Part A, 1 a Part B. Values 2 and 3 are not allowed."),
	"vendorid": field(Nullable(String()), na, nil, "Name of the AIS equipment vendor."),
	"model":    field(IntMin(0), na, int64(0), "AIS equipment model number."),
	"serial":   field(IntMin(0), na, int64(0), "AIS equipment serial number."),
	"mothership_mmsi": field(Nullable(Int()), na, nil,
		"If the vessel is a support craft, the MMSI of the vessel it is supporting."),
	"addressed":    field(IntIn(0, 1), na, int64(0), "broadcast=0, addressed=1."),
	"structured":   field(Nullable(String()), na, nil, "Structured application identifier payload."),
	"app_id":       field(IntMin(0), na, int64(0), "Application identifier."),
	"gnss":         field(In(0, 1), na, int64(1), "Current GNSS position=0, not GNSS position=1."),
	"destination":  field(Nullable(String()), na, nil, "UN/LOCODE or ERI terminal code."),
	"shipname":     field(Nullable(String()), na, nil, "Vessel name."),
	"reserved":     field(Nullable(String()), na, nil, "Bits reserved for future use."),
	"name":         field(Nullable(String()), na, nil, "Name of aid to navigation for type 21."),
	"off_position": field(Nullable(String()), na, nil, "Off-position indicator of an aid to navigation."),
	"virtual_aid":  field(Nullable(String()), na, nil, "Virtual aid to navigation flag."),
	"channel_a":    field(IntMin(0), na, int64(2087), descChannel),
	"channel_b":    field(IntMin(0), na, int64(2088), descChannel),
	"timestamp": field(Nullable(DateTime()), na, nil,
		"Time the message was broadcast. Not part of AIVDM, but critical to working with AIS data."),
}
