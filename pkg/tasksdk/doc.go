// Package tasksdk is a Go client for the tasks API.
//
// The package also defines the request and response bodies the server writes,
// so the wire format lives in one place.
//
// Basic usage:
//
//	client := tasksdk.NewClient("http://localhost:8080")
//
//	if _, err := client.Register(ctx, "Jane Doe", "jane", "s3cret"); err != nil {
//		return err
//	}
//
//	session, err := client.Login(ctx, "jane", "s3cret")
//	if err != nil {
//		return err
//	}
//	defer session.Logout(ctx)
//
//	task, err := session.CreateTask(ctx, tasksdk.TaskRequest{
//		Title:     tasksdk.String("Write report"),
//		Completed: tasksdk.String("N"),
//	})
//
// Every failed call returns an *APIError carrying the status code and the
// messages from the response envelope:
//
//	var apiErr *tasksdk.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
//		// task does not exist or belongs to someone else
//	}
package tasksdk
