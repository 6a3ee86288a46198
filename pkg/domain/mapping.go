// Package domain holds the expected dataset columns per business domain.
package domain

import "churnpredict/entities"

var mapping = []entities.DomainFields{
	{Domain: "Telecom", Fields: []string{"CustomerID", "CoverageArea", "NetworkStrength", "MonthlyCost", "ContractType", "DataIncluded", "PaymentMethod", "InternationalCalls", "CloudStorage", "Streaming", "InternetService", "TechSupport", "DeviceProtection", "Churn"}},
	{Domain: "Retail", Fields: []string{"Customer_ID", "Age", "Gender", "Annual_Income", "Total_Spend", "Years_as_Customer", "Num_of_Purchases", "Average_Transaction_Amount", "Num_of_Returns", "Num_of_Support_Contacts", "Satisfaction_Score", "Last_Purchase_Days_Ago", "Email_Opt_In", "Promotion_Response", "Churn"}},
	{Domain: "Clinical", Fields: []string{"PatientID", "AppointmentID", "HospitalID", "AppointmentDate", "TreatmentCost", "DistanceToHospital", "TravelTime", "TrafficCondition", "SanitationRating", "StaffSkillRating", "Department", "PreviousVisits", "FollowUpRecommended", "Churn"}},
	{Domain: "Insurance", Fields: []string{"CustomerID", "PolicyID", "InsuranceType", "PolicyStartDate", "PolicyEndDate", "CoverageAmount", "PremiumCost", "MinimalPayment", "PaymentFrequency", "PaymentMethod", "ClaimsMade", "PolicyStatus", "Tenure", "Churn"}},
	{Domain: "Banking", Fields: []string{"CustomerID", "AccountType", "BranchCoverage", "MobileBankingEnabled", "FreeWithdrawals", "FreeDDs", "MinimumBalance", "CurrentBalance", "AccountFeatures", "Tenure", "IsSalaryAccount", "CreditCard", "OnlineBankingEnabled", "Churn"}},
	{Domain: "Restaurant", Fields: []string{"CustomerID", "Age", "Gender", "DistanceFromRestaurant", "LastVisitDate", "UsedReservationSystem", "UsedDeliveryService", "PreferredDishCategories", "AverageRating", "RestaurantType", "AverageDishPrice", "ParkingAvailability", "RatingHygiene", "RatingQuality", "RatingTimeliness", "Churn"}},
	{Domain: "Gaming", Fields: []string{"PlayerID", "RegistrationDate", "Country/Region", "AgeGroup", "DeviceType", "TotalPlaytimeHours", "LevelAchieved", "SessionsPlayed", "AverageSessionDuration", "NumberOfPurchases", "FriendsCount", "GuildMembership", "FeedbackSentiment", "InteractiveFeatureUsage", "Churn"}},
	{Domain: "Transport", Fields: []string{"CustomerID", "TripID", "TransportMode", "Origin", "Destination", "TripDate", "Price", "Availability", "TravelTime", "OnTimePerformance", "Volume", "RollingAvgVolume", "VolumeDropPercent", "ConsecutiveDropWeeks", "LoyaltyStatus", "Churn"}},
	{Domain: "Automobiles", Fields: []string{"CustomerID", "VehicleID", "Make", "Model", "Year", "PurchaseDate", "Cost", "Mileage", "DurabilityRating", "SafetyRating", "ComfortRating", "AestheticsRating", "Color", "ServiceVisits", "LastServiceDate", "Recency", "Frequency", "Tenure", "Churn"}},
	{Domain: "Mobiles", Fields: []string{"CustomerID", "MobileID", "Brand", "Model", "PurchaseDate", "Cost", "Weight", "ScreenSize", "Color", "Features", "Storage", "RAM", "BatteryCapacity", "CameraSpecs", "PreviousPurchases", "WarrantyStatus", "Churn"}},
}

// Mapping returns a copy of the domain table in its fixed order.
func Mapping() []entities.DomainFields {
	out := make([]entities.DomainFields, len(mapping))
	for i, d := range mapping {
		out[i] = entities.DomainFields{Domain: d.Domain, Fields: append([]string(nil), d.Fields...)}
	}
	return out
}
