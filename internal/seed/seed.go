// Package seed populates an empty store with the hotel's demo dataset so a
// fresh environment boots straight into a browsable site: one admin, three
// demo guests, sample bookings, the restaurant menu and the generated room
// inventory.  Seeding runs only when the user collection is empty.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/himalayancrown/hotel-reservation/internal/model"
	"github.com/himalayancrown/hotel-reservation/internal/repository"
)

// Repos collects the repositories seeding writes through.
type Repos struct {
	Users  *repository.UserRepo
	Menu   *repository.MenuRepo
	Rooms  *repository.RoomTypeRepo
	Tables *repository.TableBookingRepo
	Stays  *repository.RoomBookingRepo
}

// Run seeds the demo dataset when the store is empty.  Idempotent: a
// non-empty user collection means a previous boot (or real traffic) already
// populated the store and nothing is touched.
func Run(ctx context.Context, r Repos) error {
	n, err := r.Users.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if n > 0 {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	today := time.Now().UTC().Format("2006-01-02")

	users := []model.User{
		{ID: "admin-1", Name: "Royal Concierge", Email: "admin@himalayancrown.com", Role: model.RoleAdmin, CreatedAt: now},
		{ID: "u1", Name: "Arjun Sharma", Email: "arjun@example.com", Role: model.RoleGuest, CreatedAt: now},
		{ID: "u2", Name: "Priya Patel", Email: "priya@example.com", Role: model.RoleGuest, CreatedAt: now},
		{ID: "u3", Name: "Vikram Singh", Email: "vikram@example.com", Role: model.RoleGuest, CreatedAt: now},
	}
	for _, u := range users {
		if err := r.Users.Append(ctx, u); err != nil {
			return fmt.Errorf("seed: user %s: %w", u.Email, err)
		}
	}

	if err := r.Menu.Replace(ctx, menuItems()); err != nil {
		return fmt.Errorf("seed: menu: %w", err)
	}
	if err := r.Rooms.Replace(ctx, roomTypes()); err != nil {
		return fmt.Errorf("seed: room types: %w", err)
	}

	tables := []model.TableBooking{
		{ID: "HTC-A1B2", UserID: "u1", Name: "Arjun Sharma", Mobile: "+91 98765 43210", Date: today, Time: "19:30", Guests: 4, TableNo: 7, Status: model.StatusConfirmed, CreatedAt: now},
		{ID: "HTC-C3D4", UserID: "u2", Name: "Priya Patel", Mobile: "+91 99988 77766", Date: today, Time: "20:00", Guests: 2, TableNo: 3, Status: model.StatusPending, CreatedAt: now},
		{ID: "HTC-E5F6", UserID: "u3", Name: "Vikram Singh", Mobile: "+91 88877 66655", Date: "2024-12-25", Time: "13:00", Guests: 6, TableNo: 12, Status: model.StatusConfirmed, CreatedAt: now},
	}
	if err := r.Tables.Replace(ctx, tables); err != nil {
		return fmt.Errorf("seed: table bookings: %w", err)
	}

	stays := []model.RoomBooking{
		{ID: "HRC-R1S2", UserID: "u1", GuestName: "Arjun Sharma", GuestEmail: "arjun@example.com", RoomTypeID: "room-1", RoomTypeName: "Classic Heritage 101", CheckIn: today, CheckOut: "2024-12-24", Nights: 3, RoomsCount: 1, TotalPrice: 600, Status: model.StatusConfirmed, CreatedAt: now},
		{ID: "HRC-T3U4", UserID: "u2", GuestName: "Priya Patel", GuestEmail: "priya@example.com", RoomTypeID: "room-5", RoomTypeName: "Presidential Sky Villa 105", CheckIn: "2024-12-30", CheckOut: "2025-01-02", Nights: 3, RoomsCount: 1, TotalPrice: 1200, Status: model.StatusPending, CreatedAt: now},
	}
	if err := r.Stays.Replace(ctx, stays); err != nil {
		return fmt.Errorf("seed: room bookings: %w", err)
	}

	log.Info().Int("users", len(users)).Msg("seeded demo dataset into empty store")
	return nil
}

func menuItems() []model.MenuItem {
	img := func(id string) string {
		return "https://images.unsplash.com/photo-" + id + "?auto=format&fit=crop&q=80&w=800"
	}
	return []model.MenuItem{
		{ID: "h1", Name: "Traditional Kullu Siddu", Category: "Himachali Specials", Price: 15, Image: img("1603133872878-684f208d82ff"), Description: "Local steamed bread with a savory walnut and poppy seed stuffing, served with fresh ghee."},
		{ID: "h2", Name: "Chana Madra", Category: "Himachali Specials", Price: 18, Image: img("1551782450_aaf510c417f"), Description: "Kabuli chana cooked in a rich, slow-simmered yogurt-based gravy with local mountain spices."},
		{ID: "h3", Name: "Sepu Vadi Heritage", Category: "Himachali Specials", Price: 20, Image: img("1603133872878-684f208d82ff"), Description: "Split urad dal dumplings cooked in a spinach gravy, a highlight of the Mandi Dham."},
		{ID: "h4", Name: "Babru with Honey", Category: "Himachali Specials", Price: 12, Image: img("1558642452_306c0ae75225"), Description: "Himachali deep-fried wheat patties, similar to kachoris, served with local forest honey."},
		{ID: "m1", Name: "Paneer Tikka Angare", Category: "Starters", Price: 18, Image: img("1551782450_aaf510c417f"), Description: "Cubes of cottage cheese marinated in spicy yogurt and grilled in a clay oven."},
		{ID: "m2", Name: "Crispy Vegetable Samosa", Category: "Starters", Price: 12, Image: img("1603133872878-684f208d82ff"), Description: "Flaky pastry filled with spiced potatoes and peas, served with tamarind chutney."},
		{ID: "m4", Name: "Classic Masala Dosa", Category: "Breakfast", Price: 14, Image: img("1551782450_aaf510c417f"), Description: "Crispy rice crepe filled with spiced potato mash, served with sambar and coconut chutney."},
		{ID: "m5", Name: "Amritsari Chole Bhature", Category: "Breakfast", Price: 16, Image: img("1603133872878-684f208d82ff"), Description: "Spicy chickpeas served with fluffy deep-fried leavened bread and pickles."},
		{ID: "m9", Name: "Butter Chicken (Murgh Makhani)", Category: "Main Course", Price: 28, Image: img("1558642452_306c0ae75225"), Description: "Tender chicken pieces simmered in a rich, creamy tomato and butter gravy."},
		{ID: "m11", Name: "Paneer Lababdar", Category: "Main Course", Price: 24, Image: img("1551782450_aaf510c417f"), Description: "Cottage cheese cubes in a luscious tomato-onion gravy with a hint of cashew."},
		{ID: "m13", Name: "Gulab Jamun with Rabri", Category: "Desserts", Price: 12, Image: img("1603133872878-684f208d82ff"), Description: "Deep-fried milk solids soaked in cardamom rose syrup, served with thickened milk."},
		{ID: "m14", Name: "Royal Rasmalai", Category: "Desserts", Price: 14, Image: img("1558642452_306c0ae75225"), Description: "Soft paneer discs soaked in sweetened, thickened milk flavored with cardamom and saffron."},
	}
}

// roomTypes generates the 21-room inventory: five tiers cycled across three
// floors with prices stepping up 25 per room.
func roomTypes() []model.RoomType {
	tiers := []string{"Classic Heritage", "Deluxe Oasis", "Executive Royal", "Imperial Suite", "Presidential Sky Villa"}
	imageIDs := []string{
		"1566665797739-1674de7a421a", "1590490360182-c33d57733427", "1595576508898-0ad5c879a061",
		"1582719478250-c89cae4dc85b", "1540518614846-7eded433c457", "1611892440504-42a792e24d32",
		"1591088398332-8a7791972843", "1566073771259-6a8506099945", "1578683010236-d716f9a3f2c1",
		"1560347876-aeef00ee58a1", "1596394516093-501ba68a0ba6", "1618773928121-c32242e63f39",
		"1592229505726-ca121723b8ea", "1522771739844-6a9f6d5f14af", "1512918766755-ee7a3048956b",
		"1631049307264-da0ec9d70304", "1611892441539-8af3d02283ac", "1598928506311-c55ded91a20c",
		"1505691938895-1758d7eaa511", "1554995207-c18c203602cb", "1502672260266-1c1ef2d93688",
	}
	amenities := []string{"24/7 Butler", "Smart Control", "Luxury Bath", "High-Speed WiFi", "Complimentary Breakfast"}

	rooms := make([]model.RoomType, 0, 21)
	for i := 0; i < 21; i++ {
		tier := tiers[i%len(tiers)]
		floor := i/5 + 1
		rooms = append(rooms, model.RoomType{
			ID:            fmt.Sprintf("room-%d", i+1),
			Name:          fmt.Sprintf("%s %d", tier, 100+i+1),
			PricePerNight: float64(200 + i*25),
			Image:         "https://images.unsplash.com/photo-" + imageIDs[i%len(imageIDs)] + "?auto=format&fit=crop&q=80&w=800",
			Capacity:      i%3 + 2,
			Description:   fmt.Sprintf("An exquisite %s located on Floor %d. Features hand-picked Indian artifacts and panoramic views of the city skyline.", tier, floor),
			Amenities:     amenities,
		})
	}
	return rooms
}
