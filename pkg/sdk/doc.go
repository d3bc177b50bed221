// Package hbnb is an embedded Go client for the hbnb lodging catalog.
//
// The client talks to Valkey or Redis directly (or keeps everything in
// process memory) and runs the same use cases as the REST API, so records
// written through it are visible to the server and vice versa as long as
// both share the key prefix.
//
//	client, _ := hbnb.New(ctx, hbnb.WithValkey("localhost:6379", ""))
//	defer client.Close()
//
//	ca, _ := client.States().Create(ctx, "California")
//	sf, _ := client.Cities().Create(ctx, ca.ID, "San Francisco")
//	host, _ := client.Users().Create(ctx, hbnb.NewUser{Email: "host@hbnb.io", Password: "pw"})
//	loft, _ := client.Places().Create(ctx, sf.ID, hbnb.NewPlace{UserID: host.ID, Name: "Loft"})
//	wifi, _ := client.Amenities().Create(ctx, "Wifi")
//	_, _ = client.Places().LinkAmenity(ctx, loft.ID, wifi.ID)
//
//	places, _ := client.Search(ctx, hbnb.SearchFilter{
//	    States:    []string{ca.ID},
//	    Amenities: []string{wifi.ID},
//	})
package hbnb
