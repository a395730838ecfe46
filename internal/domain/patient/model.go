package patient

import "github.com/imagems/console/internal/domain/auth"

// Patient mirrors the backend's patient record.
type Patient struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"fname"`
	LastName    string `json:"lname"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	NIC         string `json:"nic"`
	Gender      string `json:"gender"`
	CreatedDate string `json:"createdDate"`
}

// Input is the patient create/update form. Gender arrives as a selection
// list; only its first element is sent to the backend.
type Input struct {
	Email     string   `json:"email" form:"email"`
	FirstName string   `json:"fName" form:"fName"`
	LastName  string   `json:"lName" form:"lName"`
	Mobile    string   `json:"mobile" form:"mobile"`
	NIC       string   `json:"nic" form:"nic"`
	Password  string   `json:"password" form:"password"`
	Gender    []string `json:"gender" form:"gender"`
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
	if len(in.Mobile) != 10 {
		errs["mobile"] = "Mobile number must be exactly 10 digits"
	}
	if len(in.NIC) != 10 {
		errs["nic"] = "NIC must be exactly 10 characters"
	}
	if len(in.Gender) == 0 || in.Gender[0] == "" {
		errs["gender"] = "Gender is required"
	}
	if in.Password == "" {
		errs["password"] = "Password is required"
	} else if len(in.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters long"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// payload is the wire shape for create and update. Update carries the id in
// the body: the backend's patient PUT has no id in the path.
type payload struct {
	ID        int64  `json:"id,omitempty"`
	Email     string `json:"email"`
	FirstName string `json:"fName"`
	LastName  string `json:"lName"`
	Mobile    string `json:"mobile"`
	NIC       string `json:"nic"`
	Password  string `json:"password"`
	Gender    string `json:"gender"`
}

func (in Input) payload(id int64) payload {
	gender := ""
	if len(in.Gender) > 0 {
		gender = in.Gender[0]
	}
	return payload{
		ID:        id,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Mobile:    in.Mobile,
		NIC:       in.NIC,
		Password:  in.Password,
		Gender:    gender,
	}
}
