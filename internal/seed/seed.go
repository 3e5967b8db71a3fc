// Package seed builds the sample trips used to bootstrap a brand-new account
// and to exercise the domain model in tests. Builders are pure constructors:
// no I/O, and nothing random affects the shape of the data. Ids are fresh
// UUIDs on every call; only MockPOI's rating draws a random value.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tientran/tripsync/backend/internal/domain"
)

// vndToAUD is the VND→AUD rate frozen into the Vietnam sample data.
var vndToAUD = decimal.RequireFromString("0.000041")

// AllTrips returns every sample trip. The sync layer saves these once per
// new account, gated on the account having zero trips.
func AllTrips() []domain.Trip {
	return []domain.Trip{
		VietnamTrip(),
		JapanTrip(),
		EuropeTrip(),
		MelbourneTrip(),
		SingaporeTrip(),
	}
}

// VietnamTrip builds the fully nested sample: one country region containing
// Ho Chi Minh City and Hanoi sub-regions with POIs, a hotel, an inter-city
// flight leg, and two attached documents.
func VietnamTrip() domain.Trip {
	start := daysFromNow(30)
	end := start.AddDate(0, 0, 14)

	trip := must(domain.NewTrip("Vietnam Adventure", start, end, "Australia"))
	trip.TargetCountries = []string{"Vietnam"}
	trip.IsInternational = true
	trip.PrimaryTransportMode = domain.TransportFlight
	trip.HasFlightDetails = true
	must0(trip.SetBudget(decimal.NewFromInt(3500)))
	trip.Tags = []string{"adventure", "culture", "food", "backpacking"}

	vietnam := must(domain.NewTripRegion("Vietnam", "Vietnam", start, end))
	vietnam.Coordinates = &domain.Coordinate{Latitude: 14.0583, Longitude: 108.2772}
	vietnam.BudgetAllocation = decimalPtr(3500)

	// Ho Chi Minh City: first week.
	hcmc := must(domain.NewTripRegion("Ho Chi Minh City", "Vietnam", start, start.AddDate(0, 0, 7)))
	hcmc.Coordinates = &domain.Coordinate{Latitude: 10.8231, Longitude: 106.6297}
	hcmc.BudgetAllocation = decimalPtr(1500)
	hcmc.DailyBudgetSuggestion = decimalPtr(200)

	benThanh := domain.NewPointOfInterest("Ben Thanh Market", domain.CategoryMarket,
		domain.Coordinate{Latitude: 10.7720, Longitude: 106.6980})
	benThanh.Address = "Lê Lợi, Phường Phạm Ngũ Lão, Quận 1, TP.HCM"
	benThanh.EstimatedDuration = 2 * time.Hour
	benThanh.EntryCost = moneyPtr(must(domain.NewMoney(decimal.Zero, "VND")))
	benThanh.EstimatedSpending = moneyPtr(must(domain.NewMoneyWithRate(decimal.NewFromInt(500000), "VND", vndToAUD)))
	benThanh.Description = "Famous traditional market with local food, souvenirs, and handicrafts"
	benThanh.Rating = floatPtr(4.2)
	benThanh.OpeningHours = dailyHours("06:00", "18:00")

	warMuseum := domain.NewPointOfInterest("War Remnants Museum", domain.CategoryMuseum,
		domain.Coordinate{Latitude: 10.7797, Longitude: 106.6914})
	warMuseum.Address = "28 Võ Văn Tần, Phường 6, Quận 3, TP.HCM"
	warMuseum.EstimatedDuration = 90 * time.Minute
	warMuseum.EntryCost = moneyPtr(must(domain.NewMoneyWithRate(decimal.NewFromInt(40000), "VND", vndToAUD)))
	warMuseum.Description = "Comprehensive museum documenting the Vietnam War"
	warMuseum.Rating = floatPtr(4.5)

	hcmc.PointsOfInterest = []domain.PointOfInterest{benThanh, warMuseum}

	hotel := must(domain.NewAccommodation("Hotel Continental Saigon", start, start.AddDate(0, 0, 7)))
	hotel.Address = "132-134 Đồng Khởi, Bến Nghé, Quận 1, TP.HCM"
	hotel.Coordinates = &domain.Coordinate{Latitude: 10.7770, Longitude: 106.7026}
	hotel.TotalCost = moneyPtr(must(domain.NewMoneyWithRate(decimal.NewFromInt(1400000), "VND", vndToAUD)))
	hotel.Rating = floatPtr(4.3)
	hotel.Amenities = []string{"WiFi", "Air Conditioning", "Restaurant", "Pool", "Gym"}
	hcmc.Accommodations = []domain.Accommodation{hotel}

	// Hanoi: second week.
	hanoi := must(domain.NewTripRegion("Hanoi", "Vietnam", start.AddDate(0, 0, 8), start.AddDate(0, 0, 14)))
	hanoi.Coordinates = &domain.Coordinate{Latitude: 21.0285, Longitude: 105.8542}
	hanoi.BudgetAllocation = decimalPtr(2000)

	oldQuarter := domain.NewPointOfInterest("Hanoi Old Quarter", domain.CategoryCultural,
		domain.Coordinate{Latitude: 21.0333, Longitude: 105.8500})
	oldQuarter.EstimatedDuration = 4 * time.Hour
	oldQuarter.Description = "Historic neighborhood with narrow streets, traditional shops, and street food"
	oldQuarter.Rating = floatPtr(4.6)
	hanoi.PointsOfInterest = []domain.PointOfInterest{oldQuarter}

	flight := domain.NewTransportationMethod(domain.TransportFlight, "Ho Chi Minh City", "Hanoi")
	departure := start.AddDate(0, 0, 8)
	must0(flight.Schedule(departure, departure.Add(2*time.Hour)))
	flight.Cost = moneyPtr(must(domain.NewMoneyWithRate(decimal.NewFromInt(2500000), "VND", vndToAUD)))
	flight.BookingReference = "VN1234"
	flight.Coordinates = domain.CoordinatePair{
		From: &domain.Coordinate{Latitude: 10.8184, Longitude: 106.6521}, // SGN
		To:   &domain.Coordinate{Latitude: 21.2187, Longitude: 105.8068}, // HAN
	}
	vietnam.TransportationMethods = []domain.TransportationMethod{flight}

	must0(vietnam.AddSubRegion(hcmc))
	must0(vietnam.AddSubRegion(hanoi))
	trip.AddRegion(vietnam)

	ticket := domain.NewTripDocument("Sydney to HCMC Flight", domain.DocumentFlight)
	regionID := vietnam.ID
	ticket.AssociatedRegion = &regionID
	ticket.Notes = "Jetstar flight JQ124, Gate 23"
	trip.AttachDocument(ticket)
	trip.AttachDocument(domain.NewTripDocument("Passport Copy", domain.DocumentPassport))

	return trip
}

// JapanTrip builds a culture-focused sample with one Tokyo sub-region.
func JapanTrip() domain.Trip {
	start := daysFromNow(60)
	end := start.AddDate(0, 0, 10)

	trip := must(domain.NewTrip("Japan Cultural Experience", start, end, "Australia"))
	trip.TargetCountries = []string{"Japan"}
	trip.IsInternational = true
	trip.PrimaryTransportMode = domain.TransportFlight
	must0(trip.SetBudget(decimal.NewFromInt(5000)))
	trip.Tags = []string{"culture", "temples", "food", "technology"}

	japan := must(domain.NewTripRegion("Japan", "Japan", start, end))
	japan.Coordinates = &domain.Coordinate{Latitude: 36.2048, Longitude: 138.2529}
	japan.BudgetAllocation = decimalPtr(5000)

	tokyo := must(domain.NewTripRegion("Tokyo", "Japan", start, start.AddDate(0, 0, 6)))
	tokyo.Coordinates = &domain.Coordinate{Latitude: 35.6762, Longitude: 139.6503}
	tokyo.BudgetAllocation = decimalPtr(3000)

	sensoji := domain.NewPointOfInterest("Sensoji Temple", domain.CategoryReligious,
		domain.Coordinate{Latitude: 35.7148, Longitude: 139.7967})
	sensoji.Description = "Ancient Buddhist temple in Asakusa district"
	sensoji.Rating = floatPtr(4.7)
	sensoji.EstimatedDuration = 90 * time.Minute
	sensoji.EntryCost = moneyPtr(must(domain.NewMoney(decimal.Zero, "JPY")))
	tokyo.PointsOfInterest = []domain.PointOfInterest{sensoji}

	must0(japan.AddSubRegion(tokyo))
	trip.AddRegion(japan)

	return trip
}

// EuropeTrip builds a multi-country backpacking sample.
func EuropeTrip() domain.Trip {
	start := daysFromNow(90)
	end := start.AddDate(0, 0, 28)

	trip := must(domain.NewTrip("European Backpacking Adventure", start, end, "Australia"))
	trip.TargetCountries = []string{"France", "Italy", "Germany", "Netherlands"}
	trip.IsInternational = true
	trip.PrimaryTransportMode = domain.TransportMixed
	must0(trip.SetBudget(decimal.NewFromInt(8000)))
	trip.Tags = []string{"backpacking", "culture", "art", "history"}

	return trip
}

// MelbourneTrip builds a domestic weekend-getaway sample.
func MelbourneTrip() domain.Trip {
	start := daysFromNow(14)
	end := start.AddDate(0, 0, 7)

	trip := must(domain.NewTrip("Melbourne Weekend Getaway", start, end, "Australia"))
	trip.TargetCountries = []string{"Australia"}
	trip.PrimaryTransportMode = domain.TransportCar
	must0(trip.SetBudget(decimal.NewFromInt(1200)))
	trip.Tags = []string{"domestic", "city", "food", "coffee"}

	return trip
}

// SingaporeTrip builds a short business-conference sample.
func SingaporeTrip() domain.Trip {
	start := daysFromNow(7)
	end := start.AddDate(0, 0, 3)

	trip := must(domain.NewTrip("Singapore Business Conference", start, end, "Australia"))
	trip.TargetCountries = []string{"Singapore"}
	trip.IsInternational = true
	trip.PrimaryTransportMode = domain.TransportFlight
	trip.HasFlightDetails = true
	must0(trip.SetBudget(decimal.NewFromInt(2500)))
	trip.Tags = []string{"business", "conference", "networking"}

	return trip
}

// daysFromNow returns midnight UTC n days from today, so sample dates are
// stable within a day and never carry sub-second noise into fixtures.
func daysFromNow(n int) time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, n)
}

// dailyHours returns a seven-day opening-hours table with the same window
// every day. DayOfWeek follows the 1=Sunday convention.
func dailyHours(open, close string) []domain.OpeningHours {
	hours := make([]domain.OpeningHours, 0, 7)
	for day := 1; day <= 7; day++ {
		hours = append(hours, domain.OpeningHours{DayOfWeek: day, OpenTime: open, CloseTime: close})
	}
	return hours
}

func decimalPtr(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

func floatPtr(f float64) *float64 { return &f }

func moneyPtr(m domain.Money) *domain.Money { return &m }

// must unwraps a constructor result. Builder inputs are static and valid,
// so an error here is a programming bug worth crashing on.
func must[T any](v T, err error) T {
	if err != nil {
		panic("seed: " + err.Error())
	}
	return v
}

func must0(err error) {
	if err != nil {
		panic("seed: " + err.Error())
	}
}
