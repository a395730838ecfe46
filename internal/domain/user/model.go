package user

import "github.com/imagems/console/internal/domain/auth"

// Role is the backend's user-role record as nested in a user.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// User mirrors the backend's system-user record. These are console operators,
// not patients.
type User struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"fName"`
	LastName    string `json:"lName"`
	Email       string `json:"email"`
	Role        Role   `json:"userRole"`
	CreatedDate string `json:"createdDate"`
}

// Input is the user create/update form. The role arrives as a selection list
// of role ids; only the first is sent.
type Input struct {
	Email     string   `json:"email" form:"email"`
	FirstName string   `json:"fName" form:"fName"`
	LastName  string   `json:"lName" form:"lName"`
	Password  string   `json:"password" form:"password"`
	Role      []string `json:"userRole" form:"userRole"`
}

func (in Input) Validate() error {
	errs := auth.ValidationErrors{}
	if in.Email == "" {
		errs["email"] = "Email is required"
	} else if !auth.ValidEmail(in.Email) {
		errs["email"] = "Invalid email address"
	}
	if in.FirstName == "" {
		errs["fName"] = "First Name is required"
	}
	if in.LastName == "" {
		errs["lName"] = "Last Name is required"
	}
	if in.Password == "" {
		errs["password"] = "Password is required"
	} else if len(in.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters long"
	}
	if len(in.Role) == 0 || in.Role[0] == "" {
		errs["userRole"] = "Role is required"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type rolePayload struct {
	ID string `json:"id"`
}

// payload is the wire shape for create and update. The role selection
// collapses to a nested role reference by id.
type payload struct {
	ID        int64       `json:"id,omitempty"`
	Email     string      `json:"email"`
	FirstName string      `json:"fName"`
	LastName  string      `json:"lName"`
	Password  string      `json:"password,omitempty"`
	Role      rolePayload `json:"userRole"`
}

func (in Input) payload(id int64) payload {
	role := ""
	if len(in.Role) > 0 {
		role = in.Role[0]
	}
	return payload{
		ID:        id,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Password:  in.Password,
		Role:      rolePayload{ID: role},
	}
}
