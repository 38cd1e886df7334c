// Package schema documents the object schema format read by objcgen.
//
// A schema file is a YAML document (or a stream of documents separated by
// "---") describing one object of the native cache and the queries its
// manager exposes:
//
//	object: User
//	plural: Users            # optional, derived from object
//	manager: LCCUserManager  # optional, <prefix><object>Manager
//	comment: Users of the workspace.
//	fields:
//	  - name: id
//	    type: string
//	  - name: team_id
//	    type: string
//	  - name: role
//	    type: enum:Role
//	fetch:
//	  - where: id
//	  - where: team_id,role
//	    plural: true
//	  - where: ""
//	    plural: true
//	save:
//	  - plural: true
//	delete:
//	  - where: id
//
// # Fetch Commands
//
// Each fetch command becomes one method of the generated manager. The where
// clause is a comma-separated list of field names; every name turns into a
// selector part and a native argument:
//
//	- (nullable LCCUser *)fetchUserFromCacheById:(NSString *)id;
//	- (NSArray<LCCUser *> *)fetchUsersFromCacheByTeamId:(NSString *)teamId role:(LCCUserRole)role;
//	- (NSArray<LCCUser *> *)fetchUsersFromCache;
//
// A name missing from the field list is reported as a warning and drops the
// whole by part of the method.
//
// # Field Types
//
// The [field] package lists the supported field types and how they map to
// Objective-C and native C++ values.
package schema
