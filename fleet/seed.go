package fleet

import "github.com/vignan-transit/shuttle-tracker/geo"

// campus is the shared destination of the demo fleet (Vignan University,
// Guntur).
var campus = geo.Coordinate{Latitude: 16.4419, Longitude: 80.5189}

// SeedBuses returns the demo fleet used for local development and tests.
func SeedBuses() []Bus {
	return []Bus{
		{
			BusNumber: "VU-GT-101", Route: "A1", Area: "Guntur",
			FromCity: "Guntur", ToCity: "Vignan University",
			DriverName: "Rajesh Kumar", DriverPhone: "+91-9876543210", Capacity: 50,
			CurrentLocation: geo.Coordinate{Latitude: 16.3067, Longitude: 80.4365},
			Destination:     campus, CurrentSpeed: 35, IsActive: true,
		},
		{
			BusNumber: "VU-GT-102", Route: "A2", Area: "Guntur",
			FromCity: "Guntur", ToCity: "Vignan University",
			DriverName: "Suresh Reddy", DriverPhone: "+91-9876543211", Capacity: 45,
			CurrentLocation: geo.Coordinate{Latitude: 16.3500, Longitude: 80.4600},
			Destination:     campus, CurrentSpeed: 40, IsActive: true,
		},
		{
			BusNumber: "VU-VJ-201", Route: "B1", Area: "Vijayawada",
			FromCity: "Vijayawada", ToCity: "Vignan University",
			DriverName: "Venkat Rao", DriverPhone: "+91-9876543212", Capacity: 50,
			CurrentLocation: geo.Coordinate{Latitude: 16.5062, Longitude: 80.6480},
			Destination:     campus, CurrentSpeed: 45, IsActive: true,
		},
		{
			BusNumber: "VU-VJ-202", Route: "B2", Area: "Vijayawada",
			FromCity: "Vijayawada", ToCity: "Vignan University",
			DriverName: "Prakash Singh", DriverPhone: "+91-9876543213", Capacity: 48,
			CurrentLocation: geo.Coordinate{Latitude: 16.5100, Longitude: 80.6300},
			Destination:     campus, CurrentSpeed: 42, IsActive: true,
		},
		{
			BusNumber: "VU-TN-301", Route: "C1", Area: "Tenali",
			FromCity: "Tenali", ToCity: "Vignan University",
			DriverName: "Ramesh Babu", DriverPhone: "+91-9876543214", Capacity: 45,
			CurrentLocation: geo.Coordinate{Latitude: 16.2428, Longitude: 80.6474},
			Destination:     campus, CurrentSpeed: 38, IsActive: true,
		},
		{
			BusNumber: "VU-TN-302", Route: "C2", Area: "Tenali",
			FromCity: "Tenali", ToCity: "Vignan University",
			DriverName: "Krishna Murthy", DriverPhone: "+91-9876543215", Capacity: 50,
			CurrentLocation: geo.Coordinate{Latitude: 16.2600, Longitude: 80.6300},
			Destination:     campus, CurrentSpeed: 40, IsActive: true,
		},
		{
			BusNumber: "VU-MG-401", Route: "D1", Area: "Mangalagiri",
			FromCity: "Mangalagiri", ToCity: "Vignan University",
			DriverName: "Srinivas Rao", DriverPhone: "+91-9876543216", Capacity: 48,
			CurrentLocation: geo.Coordinate{Latitude: 16.4305, Longitude: 80.5527},
			Destination:     campus, CurrentSpeed: 36, IsActive: true,
		},
		{
			BusNumber: "VU-CL-501", Route: "E1", Area: "Chilakaluripet",
			FromCity: "Chilakaluripet", ToCity: "Vignan University",
			DriverName: "Nagarjuna Reddy", DriverPhone: "+91-9876543217", Capacity: 50,
			CurrentLocation: geo.Coordinate{Latitude: 16.0892, Longitude: 80.1672},
			Destination:     campus, CurrentSpeed: 44, IsActive: true,
		},
		{
			BusNumber: "VU-BP-601", Route: "F1", Area: "Bapatla",
			FromCity: "Bapatla", ToCity: "Vignan University",
			DriverName: "Mahesh Kumar", DriverPhone: "+91-9876543218", Capacity: 45,
			CurrentLocation: geo.Coordinate{Latitude: 15.9041, Longitude: 80.4673},
			Destination:     campus, CurrentSpeed: 39, IsActive: true,
		},
		{
			BusNumber: "VU-ST-701", Route: "G1", Area: "Sattenapalle",
			FromCity: "Sattenapalle", ToCity: "Vignan University",
			DriverName: "Ravi Teja", DriverPhone: "+91-9876543219", Capacity: 48,
			CurrentLocation: geo.Coordinate{Latitude: 16.3950, Longitude: 80.1488},
			Destination:     campus, CurrentSpeed: 41, IsActive: true,
		},
	}
}

// SeedRoutes returns route reference data matching the demo fleet.
func SeedRoutes() []Route {
	return []Route{
		{
			RouteName: "A1", Area: "Guntur",
			Stops: []Stop{
				{StopName: "Guntur Bus Stand", Location: geo.Coordinate{Latitude: 16.3067, Longitude: 80.4365}, EstimatedTime: "07:00 AM"},
				{StopName: "Brodipet", Location: geo.Coordinate{Latitude: 16.3180, Longitude: 80.4470}, EstimatedTime: "07:15 AM"},
				{StopName: "Vignan University", Location: campus, EstimatedTime: "08:00 AM"},
			},
		},
		{
			RouteName: "B1", Area: "Vijayawada",
			Stops: []Stop{
				{StopName: "Vijayawada Bus Stand", Location: geo.Coordinate{Latitude: 16.5062, Longitude: 80.6480}, EstimatedTime: "06:45 AM"},
				{StopName: "Mangalagiri", Location: geo.Coordinate{Latitude: 16.4305, Longitude: 80.5527}, EstimatedTime: "07:20 AM"},
				{StopName: "Vignan University", Location: campus, EstimatedTime: "08:00 AM"},
			},
		},
		{
			RouteName: "C1", Area: "Tenali",
			Stops: []Stop{
				{StopName: "Tenali Bus Stand", Location: geo.Coordinate{Latitude: 16.2428, Longitude: 80.6474}, EstimatedTime: "07:00 AM"},
				{StopName: "Vignan University", Location: campus, EstimatedTime: "08:00 AM"},
			},
		},
	}
}
