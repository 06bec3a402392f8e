package store

const (
	createUser = `INSERT INTO users (full_name, email, password, profile_pic)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, full_name, email, password, profile_pic, created_at;`

	findUserByEmail = `SELECT user_id, full_name, email, password, profile_pic, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, full_name, email, password, profile_pic, created_at
    FROM users
    WHERE user_id = $1;`

	updateProfilePic = `UPDATE users
    SET profile_pic = $2
    WHERE user_id = $1
    RETURNING user_id, full_name, email, password, profile_pic, created_at;`
)
